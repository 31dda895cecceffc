package zkproof

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

// NonceBytes is the protocol nonce width.
const NonceBytes = 32

// NonceSource draws single-use nonces. The zero value reads from
// crypto/rand; tests may substitute a deterministic reader.
type NonceSource struct {
	Reader io.Reader
}

// Next returns a fresh NonceBytes-byte value as lowercase hex. Every proof
// attempt must draw a new one; nonces are never reused across attempts.
func (s NonceSource) Next() (string, error) {
	r := s.Reader
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, NonceBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", errors.Wrap(err, "drawing nonce")
	}
	return hex.EncodeToString(buf), nil
}
