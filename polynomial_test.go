package pvss

import (
	mathrand "math/rand"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRand(seed int64) *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(seed))
}

func testPolynomial(coefficients ...uint64) *Polynomial {
	scalars := make([]*ristretto.Scalar, len(coefficients))
	for i, c := range coefficients {
		scalars[i] = uint64ToScalar(c)
	}
	return NewPolynomial(scalars)
}

func TestPolynomialCanonicalForm(t *testing.T) {
	assert := assert.New(t)

	p := testPolynomial(3, 2, 1, 0, 0)
	assert.Equal(2, p.Degree())
	assert.False(p.IsZero())

	zero := testPolynomial(0, 0, 0)
	assert.True(zero.IsZero())
	assert.Equal(-1, zero.Degree())
	assert.True(zero.Evaluate(uint64ToScalar(7)).Equals(uint64ToScalar(0)))
}

func TestPolynomialEvaluate(t *testing.T) {
	assert := assert.New(t)

	// f(x) = 2 + 4x + 9x^2
	p := testPolynomial(2, 4, 9)
	assert.True(p.Evaluate(uint64ToScalar(0)).Equals(uint64ToScalar(2)))
	assert.True(p.Evaluate(uint64ToScalar(3)).Equals(uint64ToScalar(95)))
	assert.True(p.Evaluate(uint64ToScalar(5)).Equals(uint64ToScalar(247)))
	assert.True(p.Evaluate(uint64ToScalar(8)).Equals(uint64ToScalar(610)))

	evals := p.Evaluations(3)
	assert.Len(evals, 3)
	assert.True(evals[0].Equals(uint64ToScalar(15)))
	assert.True(evals[1].Equals(uint64ToScalar(46)))
	assert.True(evals[2].Equals(uint64ToScalar(95)))
}

func TestSamplePolynomialEmbedsSecret(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	secret := uint64ToScalar(42)
	p, err := SamplePolynomial(secret, 9, seededRand(1))
	require.NoError(err)
	assert.Len(p.Coefficients, 10)
	assert.True(p.Evaluate(uint64ToScalar(0)).Equals(secret))

	// The secret is copied, not aliased.
	p.Coefficients[0].SetZero()
	assert.True(secret.Equals(uint64ToScalar(42)))
}

func TestSamplePolynomialDeterministicUnderSeed(t *testing.T) {
	require := require.New(t)

	p1, err := SamplePolynomial(nil, 5, seededRand(7))
	require.NoError(err)
	p2, err := SamplePolynomial(nil, 5, seededRand(7))
	require.NoError(err)
	p3, err := SamplePolynomial(nil, 5, seededRand(8))
	require.NoError(err)

	require.Len(p2.Coefficients, len(p1.Coefficients))
	same := true
	for i := range p1.Coefficients {
		require.True(p1.Coefficients[i].Equals(p2.Coefficients[i]))
		if !p1.Coefficients[i].Equals(p3.Coefficients[i]) {
			same = false
		}
	}
	require.False(same)
}

func TestPolynomialMulScalarAndSub(t *testing.T) {
	assert := assert.New(t)

	// f(x) = 1 + 2x + 3x^2, g(x) = 5 + x
	f := testPolynomial(1, 2, 3)
	g := testPolynomial(5, 1)

	scaled := f.MulScalar(uint64ToScalar(2))
	assert.True(scaled.Evaluate(uint64ToScalar(4)).Equals(uint64ToScalar(114)))

	diff := f.Sub(g)
	// f(4) - g(4) = 57 - 9 = 48
	assert.True(diff.Evaluate(uint64ToScalar(4)).Equals(uint64ToScalar(48)))

	// Subtraction that cancels the leading term must re-canonicalize.
	cancelled := f.Sub(testPolynomial(0, 0, 3))
	assert.Equal(1, cancelled.Degree())
}
