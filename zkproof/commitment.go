package zkproof

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Commit folds the canonical private fields and the nonce into one digest.
// The same (input, nonce) pair always yields the same commitment; the
// positional field order is a protocol constant.
func Commit(h *Hasher, in BirthInput, nonceHex string) (string, error) {
	fields, err := in.canonicalFields()
	if err != nil {
		return "", err
	}
	var elems []fr.Element
	for _, f := range fields {
		elems = append(elems, EncodeString(f)...)
	}
	elems = append(elems, EncodeString(nonceHex)...)
	return h.HashHex(elems)
}
