package pvss

import (
	"github.com/bwesterb/go-ristretto"
)

// ScalarShare is an evaluation (x, f(x)) of a polynomial over the scalar
// field.
type ScalarShare struct {
	X *ristretto.Scalar
	Y *ristretto.Scalar
}

// PointShare is an evaluation (x, f(x)*G) lifted into the group.
type PointShare struct {
	X *ristretto.Scalar
	Y *ristretto.Point
}

func containsDuplicates(xs []*ristretto.Scalar) bool {
	seen := make(map[[32]byte]struct{}, len(xs))
	for _, x := range xs {
		var key [32]byte
		copy(key[:], x.Bytes())
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// LagrangeCoefficientsAtZero computes the weights w_i with
// sum_i w_i * f(x_i) = f(0) for any polynomial f of degree < len(xs).
//
// The numerators prod_{j != i} x_j are built with running prefix and suffix
// products instead of the quadratic per-weight product; the denominators
// prod_{j != i} (x_j - x_i) cost one field inversion per weight. Fails with
// ErrDuplicateEvaluationPoint when two x-coordinates coincide, since the
// denominators degenerate and would fabricate an incorrect result.
func LagrangeCoefficientsAtZero(xs []*ristretto.Scalar) ([]*ristretto.Scalar, error) {
	n := len(xs)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		var one ristretto.Scalar
		one.SetOne()
		return []*ristretto.Scalar{&one}, nil
	}
	if containsDuplicates(xs) {
		return nil, ErrDuplicateEvaluationPoint
	}

	// numerators[i] = x_0 * ... * x_{i-1} * x_{i+1} * ... * x_{n-1}
	numerators := make([]*ristretto.Scalar, n)
	var prefix ristretto.Scalar
	prefix.SetOne()
	for i := 0; i < n; i++ {
		var c ristretto.Scalar
		c.Set(&prefix)
		numerators[i] = &c
		prefix.Mul(&prefix, xs[i])
	}
	var suffix ristretto.Scalar
	suffix.SetOne()
	for i := n - 1; i >= 0; i-- {
		numerators[i].Mul(numerators[i], &suffix)
		suffix.Mul(&suffix, xs[i])
	}

	var zero ristretto.Scalar
	zero.SetZero()
	for i, xi := range xs {
		var denom ristretto.Scalar
		denom.SetOne()
		for j, xj := range xs {
			if j == i {
				continue
			}
			var diff ristretto.Scalar
			denom.Mul(&denom, diff.Sub(xj, xi))
		}
		if denom.Equals(&zero) {
			return nil, ErrDuplicateEvaluationPoint
		}
		var inv ristretto.Scalar
		numerators[i].Mul(numerators[i], inv.Inverse(&denom))
	}
	return numerators, nil
}

// InterpolateScalar returns f(0) for the polynomial f interpolating the
// shares. If multiple shares carry the same x only the first contributes;
// later duplicates are dropped before computing the weights.
func InterpolateScalar(shares []ScalarShare) (*ristretto.Scalar, error) {
	xs, keep := dedupX(shareXs(shares))
	coefficients, err := LagrangeCoefficientsAtZero(xs)
	if err != nil {
		return nil, err
	}
	var result ristretto.Scalar
	result.SetZero()
	for i, k := range keep {
		var term ristretto.Scalar
		result.Add(&result, term.Mul(shares[k].Y, coefficients[i]))
	}
	return &result, nil
}

// InterpolatePoint returns f(0)*G from group-valued shares (x, f(x)*G),
// computed as one multi-scalar multiplication with the Lagrange weights.
// Duplicate x-coordinates are handled as in InterpolateScalar.
func InterpolatePoint(shares []PointShare) (*ristretto.Point, error) {
	xs := make([]*ristretto.Scalar, len(shares))
	for i, s := range shares {
		xs[i] = s.X
	}
	deduped, keep := dedupX(xs)
	coefficients, err := LagrangeCoefficientsAtZero(deduped)
	if err != nil {
		return nil, err
	}
	points := make([]*ristretto.Point, len(keep))
	for i, k := range keep {
		points[i] = shares[k].Y
	}
	return multiscalarMul(coefficients, points), nil
}

func shareXs(shares []ScalarShare) []*ristretto.Scalar {
	xs := make([]*ristretto.Scalar, len(shares))
	for i, s := range shares {
		xs[i] = s.X
	}
	return xs
}

// dedupX keeps the first sample for every distinct x and returns the kept
// x-coordinates together with their original indices.
func dedupX(xs []*ristretto.Scalar) ([]*ristretto.Scalar, []int) {
	seen := make(map[[32]byte]struct{}, len(xs))
	kept := make([]*ristretto.Scalar, 0, len(xs))
	keep := make([]int, 0, len(xs))
	for i, x := range xs {
		var key [32]byte
		copy(key[:], x.Bytes())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, x)
		keep = append(keep, i)
	}
	return kept, keep
}
