// Package ledger adapts accepted chart records into the form the external
// on-chain chart registry consumes. Recording itself happens outside this
// service; only the hash and entry layout are fixed here so both sides
// agree on them.
package ledger

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/AbhishekDubey013/zkastro-proof/store"
	"github.com/AbhishekDubey013/zkastro-proof/zkproof"
)

// ChartHash computes the Keccak256 digest the registry stores for a
// verified chart: the commitment hex bytes followed by each longitude as a
// little-endian uint64, in the protocol's position order.
func ChartHash(commitmentHex string, pos zkproof.PublicPositions) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(commitmentHex))
	var buf [8]byte
	for _, v := range pos.Longitudes() {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// Entry is the registry-side record for a verified chart.
type Entry struct {
	ChartID   string `json:"chart_id"`
	ChartHash string `json:"chart_hash"`
	Verified  bool   `json:"zk_verified"`
	Timestamp int64  `json:"timestamp"`
}

// NewEntry builds the registry entry for a stored chart record.
func NewEntry(rec store.ChartRecord) Entry {
	sum := ChartHash(rec.Commitment, rec.Positions)
	return Entry{
		ChartID:   rec.ID,
		ChartHash: hex.EncodeToString(sum[:]),
		Verified:  rec.Verified,
		Timestamp: rec.CreatedAt.Unix(),
	}
}
