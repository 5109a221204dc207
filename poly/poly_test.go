package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numkit/numkit/poly"
	"github.com/numkit/numkit/sampling"
)

func TestNew(t *testing.T) {
	p, err := poly.New(2, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 2, p.Degree())

	_, err = poly.New(-1, nil)
	require.ErrorIs(t, err, poly.ErrInvalidDegree)

	_, err = poly.New(3, []float64{1, 2, 3})
	require.ErrorIs(t, err, poly.ErrMissingCoefficients)

	// extra coefficients beyond degree+1 are ignored
	p, err = poly.New(1, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 1, p.Degree())
	require.Equal(t, 2.0, p.Leading())
}

func TestNewCopiesCoefficients(t *testing.T) {
	coeffs := []float64{1, 2, 3}
	p, err := poly.New(2, coeffs)
	require.NoError(t, err)

	coeffs[0] = -7
	require.Equal(t, 1.0, p.Trailing())
}

func TestFromCoefficients(t *testing.T) {
	p, err := poly.FromCoefficients([]float64{4, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 2, p.Degree())

	_, err = poly.FromCoefficients(nil)
	require.ErrorIs(t, err, poly.ErrInvalidDegree)
}

func TestAccessors(t *testing.T) {
	p, err := poly.New(3, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.Equal(t, 4.0, p.Leading())
	require.Equal(t, 1.0, p.Trailing())
	require.False(t, p.IsConstant())

	c, err := p.Coefficient(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, c)

	// reads past the degree degrade to the leading coefficient
	c, err = p.Coefficient(7)
	require.ErrorIs(t, err, poly.ErrIndexExceedsDegree)
	require.Equal(t, 4.0, c)

	c, err = p.Coefficient(-1)
	require.ErrorIs(t, err, poly.ErrIndexExceedsDegree)
	require.Equal(t, 4.0, c)

	q, err := poly.New(0, []float64{5})
	require.NoError(t, err)
	require.True(t, q.IsConstant())
	require.Equal(t, 5.0, q.Leading())
	require.Equal(t, 5.0, q.Trailing())
}

func TestClone(t *testing.T) {
	p, err := poly.New(1, []float64{1, 2})
	require.NoError(t, err)

	q := p.Clone()
	require.True(t, p.Equal(q))
	require.Zero(t, p.Compare(q))
}

func TestCompare(t *testing.T) {
	p, err := poly.New(2, []float64{1, 2, 3})
	require.NoError(t, err)
	q, err := poly.New(2, []float64{1, 2, 3})
	require.NoError(t, err)

	require.Zero(t, p.Compare(q))
	require.Zero(t, p.Compare(p))

	// degrees differ: sign of the degree difference
	r, err := poly.New(4, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, -2, p.Compare(r))
	require.Equal(t, 2, r.Compare(p))

	// same degree: degree+1-i at the first mismatching index
	s, err := poly.New(2, []float64{1, 0, 3})
	require.NoError(t, err)
	require.Equal(t, 2, p.Compare(s))

	u, err := poly.New(2, []float64{1, 2, 5})
	require.NoError(t, err)
	require.Equal(t, 1, p.Compare(u))
}

func TestEqual(t *testing.T) {
	p, err := poly.New(1, []float64{1, 2})
	require.NoError(t, err)
	q, err := poly.New(1, []float64{1, 2})
	require.NoError(t, err)
	r, err := poly.New(1, []float64{1, 3})
	require.NoError(t, err)

	require.True(t, p.Equal(q))
	require.False(t, p.Equal(r))
}

func TestFuncClosuresAreIndependent(t *testing.T) {
	p, err := poly.New(1, []float64{0, 1})
	require.NoError(t, err)
	q, err := poly.New(0, []float64{7})
	require.NoError(t, err)

	fp, fq := p.Func(), q.Func()
	require.Equal(t, 3.0, fp(3))
	require.Equal(t, 7.0, fq(3))
	require.Equal(t, 5.0, fp(5))
}

func TestRandomCloneRoundTrip(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte{'p', 'o', 'l', 'y'})
	require.NoError(t, err)

	for i := 0; i < 16; i++ {
		coeffs := sampling.Float64Slice(prng, i+1, -10, 10)
		p, err := poly.New(i, coeffs)
		require.NoError(t, err)
		require.True(t, p.Equal(p.Clone()))
	}
}
