package zkproof

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

const (
	digestHexLen = 2 * fr.Bytes
	nonceHexLen  = 2 * NonceBytes
)

// Submission is the wire payload the verifier receives: the proof artifact
// together with the disclosed positions it claims to be bound to.
type Submission struct {
	Commitment string          `json:"commitment"`
	Proof      string          `json:"proof"`
	Nonce      string          `json:"nonce"`
	Positions  PublicPositions `json:"positions"`
}

// Verifier runs the server half of the protocol.
type Verifier struct {
	hasher *Hasher
}

func NewVerifier(h *Hasher) *Verifier {
	return &Verifier{hasher: h}
}

// Verify recomputes the challenge from the submitted commitment and
// positions, recomputes the proof from commitment, nonce and that
// challenge, and accepts only on exact digest equality. Malformed hex and
// recomputation mismatch are distinct errors here, but callers must
// collapse them into one outward failure so the endpoint cannot be used as
// a forging oracle.
func (v *Verifier) Verify(sub Submission) error {
	if err := checkHex(sub.Commitment, digestHexLen); err != nil {
		return errors.Wrap(ErrProofMalformed, "commitment")
	}
	if err := checkHex(sub.Proof, digestHexLen); err != nil {
		return errors.Wrap(ErrProofMalformed, "proof")
	}
	if err := checkHex(sub.Nonce, nonceHexLen); err != nil {
		return errors.Wrap(ErrProofMalformed, "nonce")
	}

	challenge, err := DeriveChallenge(v.hasher, sub.Commitment, sub.Positions)
	if err != nil {
		return err
	}
	expected, err := bindProof(v.hasher, sub.Commitment, sub.Nonce, challenge)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(sub.Proof)) != 1 {
		return ErrProofInvalid
	}
	return nil
}

// checkHex requires exactly wantLen lowercase hex characters. Digests and
// nonces have one canonical rendering; anything else is malformed.
func checkHex(s string, wantLen int) error {
	if len(s) != wantLen {
		return errors.Errorf("want %d hex characters, got %d", wantLen, len(s))
	}
	if s != strings.ToLower(s) {
		return errors.New("non-canonical uppercase hex")
	}
	if _, err := hex.DecodeString(s); err != nil {
		return err
	}
	return nil
}
