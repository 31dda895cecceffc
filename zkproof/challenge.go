package zkproof

// DeriveChallenge binds the claimed commitment to the disclosed positions.
// It is the non-interactive substitute for a verifier-issued random
// challenge: both sides recompute it from already-public data, so it is
// never transmitted or persisted.
func DeriveChallenge(h *Hasher, commitmentHex string, pos PublicPositions) (string, error) {
	elems := EncodeString(commitmentHex)
	for _, v := range pos.Longitudes() {
		elems = append(elems, EncodeString(CanonicalInt(v))...)
	}
	return h.HashHex(elems)
}
