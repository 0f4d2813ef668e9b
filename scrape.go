package pvss

import (
	"io"
	"sync"

	"github.com/bwesterb/go-ristretto"
)

// scrapeCoefficients returns lambda_i = prod_{j != i, 1 <= j <= n} 1/(i-j)
// for i = 1..n. The coefficients depend on n alone, so they may be computed
// once and reused across verifications.
func scrapeCoefficients(n int) []*ristretto.Scalar {
	out := make([]*ristretto.Scalar, n)
	for i := 1; i <= n; i++ {
		var denom ristretto.Scalar
		denom.SetOne()
		xi := uint64ToScalar(uint64(i))
		for j := 1; j <= n; j++ {
			if j == i {
				continue
			}
			var diff ristretto.Scalar
			denom.Mul(&denom, diff.Sub(xi, uint64ToScalar(uint64(j))))
		}
		var lambda ristretto.Scalar
		out[i-1] = lambda.Inverse(&denom)
	}
	return out
}

// DualCodeword is the weight vector w_i = lambda_i * z(i) for a random
// check polynomial z of degree <= n-t-2, orthogonal to every evaluation
// vector of a polynomial of degree <= t-1 on the grid 1..n.
//
// A codeword is sound for the single check it was sampled for: reusing one
// across logically distinct verifications lets a prover craft an evaluation
// vector orthogonal to that particular z without being low degree. Amortize
// with CodewordCache only where the instances are mutually trusted, e.g.
// many verifications of one fixed sharing.
type DualCodeword struct {
	n, t    int
	weights []*ristretto.Scalar
	vacuous bool
}

// NewDualCodeword samples a fresh check polynomial for an (n, t) instance.
// For n < t+2 the test is vacuously true, as too few points remain to
// distinguish any degree bound; that degenerate case is preserved.
func NewDualCodeword(n, t int, rand io.Reader) (*DualCodeword, error) {
	if t < 1 || t > n {
		return nil, ErrThresholdViolation
	}
	if n < t+2 {
		return &DualCodeword{n: n, t: t, vacuous: true}, nil
	}
	z, err := SamplePolynomial(nil, n-t-2, rand)
	if err != nil {
		return nil, err
	}
	lambdas := scrapeCoefficients(n)
	weights := make([]*ristretto.Scalar, n)
	for i := 0; i < n; i++ {
		var w ristretto.Scalar
		weights[i] = w.Mul(lambdas[i], z.Evaluate(uint64ToScalar(uint64(i+1))))
	}
	return &DualCodeword{n: n, t: t, weights: weights}, nil
}

// CheckPoints accepts iff the committed evaluations v_1..v_n satisfy
// sum_i w_i * v_i == identity, i.e. lie on a polynomial of degree <= t-1
// except with probability (deg z + 1)/|field|.
func (dc *DualCodeword) CheckPoints(evals []*ristretto.Point) error {
	if dc.vacuous {
		return nil
	}
	if len(evals) != dc.n {
		return ErrDimensionMismatch
	}
	if !isIdentity(multiscalarMul(dc.weights, evals)) {
		return ErrThresholdViolation
	}
	return nil
}

// CheckScalars is the field-domain counterpart of CheckPoints for plain
// evaluations.
func (dc *DualCodeword) CheckScalars(evals []*ristretto.Scalar) error {
	if dc.vacuous {
		return nil
	}
	if len(evals) != dc.n {
		return ErrDimensionMismatch
	}
	var sum, zero ristretto.Scalar
	sum.SetZero()
	zero.SetZero()
	for i, w := range dc.weights {
		var term ristretto.Scalar
		sum.Add(&sum, term.Mul(w, evals[i]))
	}
	if !sum.Equals(&zero) {
		return ErrThresholdViolation
	}
	return nil
}

// LowDegreeTest draws a fresh check polynomial and verifies that the
// committed evaluations lie on a polynomial of degree <= t-1. Each call
// MUST get its own randomness; see DualCodeword for the amortized variant
// and its caveat.
func LowDegreeTest(evals []*ristretto.Point, t int, rand io.Reader) error {
	dc, err := NewDualCodeword(len(evals), t, rand)
	if err != nil {
		return err
	}
	return dc.CheckPoints(evals)
}

// LowDegreeTestScalars is LowDegreeTest over plain field evaluations.
func LowDegreeTestScalars(evals []*ristretto.Scalar, t int, rand io.Reader) error {
	dc, err := NewDualCodeword(len(evals), t, rand)
	if err != nil {
		return err
	}
	return dc.CheckScalars(evals)
}

type codewordKey struct {
	n, t int
}

// CodewordCache amortizes the quadratic scrape-coefficient computation when
// many verifications share one (n, t). Safe for concurrent readers once
// built. The soundness caveat on DualCodeword applies to every cached entry.
type CodewordCache struct {
	mu        sync.RWMutex
	codewords map[codewordKey]*DualCodeword
}

func NewCodewordCache() *CodewordCache {
	return &CodewordCache{codewords: make(map[codewordKey]*DualCodeword)}
}

// Get returns the cached codeword for (n, t), sampling one on first use.
func (cc *CodewordCache) Get(n, t int, rand io.Reader) (*DualCodeword, error) {
	key := codewordKey{n: n, t: t}
	cc.mu.RLock()
	dc, ok := cc.codewords[key]
	cc.mu.RUnlock()
	if ok {
		return dc, nil
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if dc, ok = cc.codewords[key]; ok {
		return dc, nil
	}
	dc, err := NewDualCodeword(n, t, rand)
	if err != nil {
		return nil, err
	}
	cc.codewords[key] = dc
	return dc, nil
}
