package zkproof

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func newTestHasher(t *testing.T) *Hasher {
	t.Helper()
	h, err := NewHasher()
	if err != nil {
		t.Fatalf("NewHasher: %v", err)
	}
	return h
}

func TestHashDeterministic(t *testing.T) {
	h := newTestHasher(t)
	elems := EncodeString("deterministic input")
	a, err := h.HashHex(elems)
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.HashHex(elems)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same input hashed to %s and %s", a, b)
	}
}

func TestHashOrderSensitive(t *testing.T) {
	h := newTestHasher(t)
	var x, y fr.Element
	x.SetUint64(1)
	y.SetUint64(2)
	ab, err := h.HashHex([]fr.Element{x, y})
	if err != nil {
		t.Fatal(err)
	}
	ba, err := h.HashHex([]fr.Element{y, x})
	if err != nil {
		t.Fatal(err)
	}
	if ab == ba {
		t.Fatal("hash ignored element order")
	}
}

func TestHashHexFormat(t *testing.T) {
	h := newTestHasher(t)
	digest, err := h.HashHex(EncodeString("format check"))
	if err != nil {
		t.Fatal(err)
	}
	if len(digest) != digestHexLen {
		t.Fatalf("digest length %d, want %d", len(digest), digestHexLen)
	}
	if digest != strings.ToLower(digest) {
		t.Fatalf("digest %s is not lowercase", digest)
	}
	if _, err := hex.DecodeString(digest); err != nil {
		t.Fatalf("digest %s is not hex: %v", digest, err)
	}
}
