package zkproof

import "github.com/pkg/errors"

var (
	// ErrEncoding marks private input that cannot be canonicalized.
	ErrEncoding = errors.New("input cannot be canonicalized")

	// ErrProofMalformed marks an artifact whose hex fields do not parse.
	ErrProofMalformed = errors.New("malformed proof artifact")

	// ErrProofInvalid marks a recomputation mismatch. Callers must surface
	// it and ErrProofMalformed identically on the wire.
	ErrProofInvalid = errors.New("proof verification failed")
)
