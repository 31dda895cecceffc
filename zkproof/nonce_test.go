package zkproof

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func TestNonceFormat(t *testing.T) {
	var src NonceSource
	nonce, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if len(nonce) != 2*NonceBytes {
		t.Fatalf("nonce length %d, want %d", len(nonce), 2*NonceBytes)
	}
	if nonce != strings.ToLower(nonce) {
		t.Fatalf("nonce %s is not lowercase", nonce)
	}
	if _, err := hex.DecodeString(nonce); err != nil {
		t.Fatalf("nonce %s is not hex: %v", nonce, err)
	}
}

func TestNonceFreshPerDraw(t *testing.T) {
	var src NonceSource
	a, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	b, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two draws returned the same nonce")
	}
}

func TestNonceSubstitutableReader(t *testing.T) {
	raw := bytes.Repeat([]byte{0xab}, NonceBytes)
	src := NonceSource{Reader: bytes.NewReader(raw)}
	nonce, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if want := strings.Repeat("ab", NonceBytes); nonce != want {
		t.Fatalf("nonce = %s, want %s", nonce, want)
	}

	// The reader is exhausted now; the source must fail rather than pad.
	if _, err := src.Next(); err == nil {
		t.Fatal("expected error from exhausted reader")
	}
}
