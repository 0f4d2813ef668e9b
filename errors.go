package pvss

import "errors"

// Verification errors are definitive judgments about untrusted input; none
// of them is ever retried internally.
var (
	// ErrInvalidInstance means a proof instance contains the group identity
	// where a generator or commitment was expected.
	ErrInvalidInstance = errors.New("pvss: instance contains the identity element")
	// ErrInvalidProof means the recomputed Fiat-Shamir challenge does not
	// match the one carried by the proof.
	ErrInvalidProof = errors.New("pvss: challenge mismatch")
	// ErrInvalidOpening means a decommitment does not match the published
	// commitment or digest.
	ErrInvalidOpening = errors.New("pvss: opening does not match commitment")
	// ErrDuplicateEvaluationPoint means interpolation was given two samples
	// at the same x-coordinate.
	ErrDuplicateEvaluationPoint = errors.New("pvss: duplicate x-coordinate")
	// ErrThresholdViolation means a committed evaluation vector is not on a
	// polynomial of the claimed degree, or the access structure itself is
	// malformed.
	ErrThresholdViolation = errors.New("pvss: degree bound violated")
	// ErrDeserialization means externally supplied bytes are not a canonical
	// field or group encoding.
	ErrDeserialization = errors.New("pvss: not a canonical encoding")
	// ErrDimensionMismatch means commitment, evaluation and ciphertext
	// array lengths disagree.
	ErrDimensionMismatch = errors.New("pvss: input lengths disagree")
)
