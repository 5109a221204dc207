package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numkit/numkit/poly"
)

func TestString(t *testing.T) {
	p, err := poly.New(2, []float64{1, -2.5, 3})
	require.NoError(t, err)
	require.Equal(t, "+ 1x^0 - 2.5x^1 + 3x^2 ", p.String())

	q, err := poly.New(0, []float64{0})
	require.NoError(t, err)
	require.Equal(t, "+ 0x^0 ", q.String())
}

func TestFormat(t *testing.T) {
	p, err := poly.New(1, []float64{0.5, -1})
	require.NoError(t, err)
	require.Equal(t, "+ 0.50x^0 - 1.00x^1 ", p.Format("%.2f"))
}
