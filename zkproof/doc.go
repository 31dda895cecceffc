// Package zkproof implements the commitment/challenge/proof protocol used
// to accept a user's natal chart without the server seeing the birth data.
//
// The submitter encodes the private birth fields into BN254 scalar field
// elements, folds them with a fresh nonce into a commitment, derives a
// Fiat-Shamir challenge from the commitment and the disclosed planetary
// positions, and binds commitment, nonce and challenge into a proof digest.
// The verifier recomputes the challenge and the proof from the submitted
// artifact and accepts on exact digest equality.
//
// Note that verification binds the proof to the submitted positions and
// nonce, not to the private inputs behind the commitment: it checks internal
// consistency of the artifact, not provenance of the positions.
package zkproof
