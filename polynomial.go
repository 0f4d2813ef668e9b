package pvss

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// Polynomial is a dense univariate polynomial over the scalar field.
// Coefficients[i] multiplies x^i. The canonical form carries no trailing
// zero coefficient; the zero polynomial is the empty slice.
type Polynomial struct {
	Coefficients []*ristretto.Scalar
}

// NewPolynomial trims trailing zeros to produce the canonical form.
func NewPolynomial(coefficients []*ristretto.Scalar) *Polynomial {
	p := &Polynomial{Coefficients: coefficients}
	p.removeZeros()
	return p
}

func ZeroPolynomial() *Polynomial {
	return &Polynomial{}
}

func (p *Polynomial) removeZeros() {
	var zero ristretto.Scalar
	zero.SetZero()
	end := len(p.Coefficients)
	for end > 0 && p.Coefficients[end-1].Equals(&zero) {
		end--
	}
	p.Coefficients = p.Coefficients[:end]
}

// Degree of the canonical polynomial; the zero polynomial has degree -1.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

func (p *Polynomial) IsZero() bool {
	return len(p.Coefficients) == 0
}

// SamplePolynomial returns a degree-`degree` polynomial with independent
// uniform coefficients. If secret is non-nil the constant term is replaced
// with it, embedding the secret at x = 0.
func SamplePolynomial(secret *ristretto.Scalar, degree int, rand io.Reader) (*Polynomial, error) {
	if degree < 0 {
		return ZeroPolynomial(), nil
	}
	coefficients := make([]*ristretto.Scalar, degree+1)
	for i := range coefficients {
		c, err := randomScalar(rand)
		if err != nil {
			return nil, err
		}
		coefficients[i] = c
	}
	if secret != nil {
		var s ristretto.Scalar
		s.Set(secret)
		coefficients[0] = &s
	}
	return &Polynomial{Coefficients: coefficients}, nil
}

// Evaluate computes p(x) by Horner's method.
func (p *Polynomial) Evaluate(x *ristretto.Scalar) *ristretto.Scalar {
	var acc ristretto.Scalar
	acc.SetZero()
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		acc.Mul(&acc, x)
		acc.Add(&acc, p.Coefficients[i])
	}
	return &acc
}

// Evaluations returns p(1), p(2), ..., p(n), the per-party share values.
func (p *Polynomial) Evaluations(n int) []*ristretto.Scalar {
	out := make([]*ristretto.Scalar, n)
	for i := 0; i < n; i++ {
		out[i] = p.Evaluate(uint64ToScalar(uint64(i + 1)))
	}
	return out
}

// MulScalar returns c * p as a new polynomial.
func (p *Polynomial) MulScalar(c *ristretto.Scalar) *Polynomial {
	coefficients := make([]*ristretto.Scalar, len(p.Coefficients))
	for i, a := range p.Coefficients {
		var r ristretto.Scalar
		coefficients[i] = r.Mul(a, c)
	}
	return NewPolynomial(coefficients)
}

// Sub returns p - q as a new polynomial.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	size := len(p.Coefficients)
	if len(q.Coefficients) > size {
		size = len(q.Coefficients)
	}
	coefficients := make([]*ristretto.Scalar, size)
	for i := 0; i < size; i++ {
		var r ristretto.Scalar
		r.SetZero()
		if i < len(p.Coefficients) {
			r.Add(&r, p.Coefficients[i])
		}
		if i < len(q.Coefficients) {
			r.Sub(&r, q.Coefficients[i])
		}
		coefficients[i] = &r
	}
	return NewPolynomial(coefficients)
}
