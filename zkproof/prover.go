package zkproof

// Prover runs the client half of the protocol.
type Prover struct {
	Hasher *Hasher
	Nonces NonceSource
}

// NewProver returns a prover drawing nonces from crypto/rand.
func NewProver(h *Hasher) *Prover {
	return &Prover{Hasher: h}
}

// Prove derives the submission artifact for the given private inputs and
// public positions. A fresh nonce is drawn on every call, so retrying a
// rejected submission always produces an unrelated commitment.
func (p *Prover) Prove(in BirthInput, pos PublicPositions) (Artifact, error) {
	nonce, err := p.Nonces.Next()
	if err != nil {
		return Artifact{}, err
	}
	return p.ProveWithNonce(in, pos, nonce)
}

// ProveWithNonce is Prove with a caller-supplied nonce. The nonce must be
// single-use; reusing one links commitments across submissions.
func (p *Prover) ProveWithNonce(in BirthInput, pos PublicPositions, nonceHex string) (Artifact, error) {
	commitment, err := Commit(p.Hasher, in, nonceHex)
	if err != nil {
		return Artifact{}, err
	}
	challenge, err := DeriveChallenge(p.Hasher, commitment, pos)
	if err != nil {
		return Artifact{}, err
	}
	proof, err := bindProof(p.Hasher, commitment, nonceHex, challenge)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Commitment: commitment, Proof: proof, Nonce: nonceHex}, nil
}
