package pvss

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// ShamirShare splits a secret into n shares with reconstruction threshold
// t: the secret is embedded at f(0) of a random degree-(t-1) polynomial and
// each share is an evaluation at a fresh random x-coordinate. Any t shares
// recover the secret; fewer reveal nothing.
func ShamirShare(secret *ristretto.Scalar, t, n int, rand io.Reader) ([]ScalarShare, error) {
	if t < 1 || t > n {
		return nil, ErrThresholdViolation
	}

	poly, err := SamplePolynomial(secret, t-1, rand)
	if err != nil {
		return nil, err
	}

	shares := make([]ScalarShare, n)
	for i := range shares {
		x, err := randomScalar(rand)
		if err != nil {
			return nil, err
		}
		shares[i] = ScalarShare{X: x, Y: poly.Evaluate(x)}
	}
	return shares, nil
}

// ShamirRecover interpolates the shares at zero. The caller supplies at
// least t shares of one sharing; duplicate x-coordinates are rejected.
func ShamirRecover(shares []ScalarShare) (*ristretto.Scalar, error) {
	xs := shareXs(shares)
	if containsDuplicates(xs) {
		return nil, ErrDuplicateEvaluationPoint
	}
	return InterpolateScalar(shares)
}
