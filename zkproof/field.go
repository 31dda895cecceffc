package zkproof

import (
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ChunkBytes is the number of input bytes packed into a single field
// element. 31 bytes always stays below the ~254-bit BN254 scalar modulus.
// Submitter and verifier must use the identical value; changing it breaks
// every previously issued commitment.
const ChunkBytes = 31

// CoordDecimals is the fixed decimal precision used when rendering
// latitude and longitude before encoding.
const CoordDecimals = 4

// EncodeString splits s into ChunkBytes-sized chunks and packs each chunk
// big-endian into one field element. Identical strings always yield the
// identical element sequence.
func EncodeString(s string) []fr.Element {
	data := []byte(s)
	elems := make([]fr.Element, 0, (len(data)+ChunkBytes-1)/ChunkBytes)
	for start := 0; start < len(data); start += ChunkBytes {
		end := start + ChunkBytes
		if end > len(data) {
			end = len(data)
		}
		var e fr.Element
		e.SetBytes(data[start:end])
		elems = append(elems, e)
	}
	return elems
}

// CanonicalCoord renders a coordinate in the protocol's fixed decimal
// format, e.g. -74.006 -> "-74.0060".
func CanonicalCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', CoordDecimals, 64)
}

// CanonicalInt renders an integer position value in base 10.
func CanonicalInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
