package pvss

import (
	"github.com/bwesterb/go-ristretto"
)

// CommitmentParams holds the two generators of the Pedersen scheme. G is
// the group's standard base point and H is hashed to the curve from a fixed
// public tag, so no party knows a discrete-log relation between them. That
// independence is what binding rests on; hiding is information-theoretic
// over the randomness.
type CommitmentParams struct {
	G *ristretto.Point
	H *ristretto.Point
}

// NewCommitmentParams derives the generator pair. The derivation is
// deterministic, so any verifier reproduces the same params.
func NewCommitmentParams() *CommitmentParams {
	var base ristretto.Point
	base.SetBase()

	return &CommitmentParams{
		G: &base,
		H: hashToPoint(PEDERSEN_H_DOMAIN_TAG),
	}
}

// Commit computes m*G + r*H.
func (cp *CommitmentParams) Commit(m, r *ristretto.Scalar) *ristretto.Point {
	return multiscalarMul([]*ristretto.Scalar{m, r}, []*ristretto.Point{cp.G, cp.H})
}

// AddCommitments folds commitments homomorphically:
// commit(m1,r1) + commit(m2,r2) = commit(m1+m2, r1+r2).
func AddCommitments(commitments ...*ristretto.Point) *ristretto.Point {
	var sum ristretto.Point
	sum.SetZero()
	for _, c := range commitments {
		sum.Add(&sum, c)
	}
	return &sum
}
