package zkproof

import (
	"encoding/hex"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/pkg/errors"
)

// Hasher wraps the MiMC algebraic hash over the BN254 scalar field. Build
// one with NewHasher at process start and inject it wherever hashing is
// needed; after construction Hash is pure, deterministic and safe for
// concurrent use.
type Hasher struct{}

// NewHasher constructs the hash primitive. It runs a probe hash so that
// the round-constant tables are built and checked exactly once, up front;
// a failure here means the verified acceptance path is unavailable and the
// caller must fail closed.
func NewHasher() (*Hasher, error) {
	h := &Hasher{}
	var probe fr.Element
	probe.SetUint64(1)
	digest, err := h.Hash([]fr.Element{probe})
	if err != nil {
		return nil, errors.Wrap(err, "initializing hash primitive")
	}
	if digest.IsZero() {
		return nil, errors.New("initializing hash primitive: degenerate probe digest")
	}
	return h, nil
}

// Hash absorbs the elements in order and returns the digest, itself a
// field element.
func (h *Hasher) Hash(elems []fr.Element) (fr.Element, error) {
	mc := mimc.NewMiMC()
	for i := range elems {
		if _, err := mc.Write(elems[i].Marshal()); err != nil {
			return fr.Element{}, errors.Wrap(err, "absorbing element")
		}
	}
	var out fr.Element
	out.SetBytes(mc.Sum(nil))
	return out, nil
}

// HashHex hashes the elements and renders the digest via ElementToHex.
func (h *Hasher) HashHex(elems []fr.Element) (string, error) {
	digest, err := h.Hash(elems)
	if err != nil {
		return "", err
	}
	return ElementToHex(digest), nil
}

// ElementToHex renders a field element as its canonical 32-byte big-endian
// form in lowercase hex.
func ElementToHex(e fr.Element) string {
	b := e.Bytes()
	return hex.EncodeToString(b[:])
}
