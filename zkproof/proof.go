package zkproof

// Artifact is what leaves the client: the commitment, the proof over it,
// and the nonce that opens the commitment's hiding layer. The raw birth
// inputs are not part of it.
type Artifact struct {
	Commitment string `json:"commitment"`
	Proof      string `json:"proof"`
	Nonce      string `json:"nonce"`
}

// bindProof folds commitment, nonce and challenge into the proof digest.
// Prover and verifier must run the identical fold.
func bindProof(h *Hasher, commitmentHex, nonceHex, challengeHex string) (string, error) {
	elems := EncodeString(commitmentHex)
	elems = append(elems, EncodeString(nonceHex)...)
	elems = append(elems, EncodeString(challengeHex)...)
	return h.HashHex(elems)
}
