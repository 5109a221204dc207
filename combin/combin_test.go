package combin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	for _, tc := range []struct {
		x, want uint32
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{12, 479001600},
	} {
		got, err := Factorial(tc.x)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	// 13! does not fit 32 bits
	got, err := Factorial(13)
	require.ErrorIs(t, err, ErrOverflow)
	require.Zero(t, got)
}

func TestFactorial64(t *testing.T) {
	got, err := Factorial64(13)
	require.NoError(t, err)
	require.Equal(t, uint64(6227020800), got)

	got, err = Factorial64(20)
	require.NoError(t, err)
	require.Equal(t, uint64(2432902008176640000), got)

	got, err = Factorial64(21)
	require.ErrorIs(t, err, ErrOverflow)
	require.Zero(t, got)
}

func TestBinomial(t *testing.T) {
	for _, tc := range []struct {
		m, n, want uint32
	}{
		{5, 2, 10},
		{5, 5, 1},
		{5, 0, 1},
		{10, 3, 120},
		{12, 6, 924},
	} {
		got, err := Binomial(tc.m, tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	got, err := Binomial(2, 5)
	require.ErrorIs(t, err, ErrInvalidArguments)
	require.Zero(t, got)

	// m! overflows even though C(13, 1) = 13 would fit
	got, err = Binomial(13, 1)
	require.ErrorIs(t, err, ErrOverflow)
	require.Zero(t, got)
}

func TestBinomial64(t *testing.T) {
	got, err := Binomial64(20, 10)
	require.NoError(t, err)
	require.Equal(t, uint64(184756), got)

	_, err = Binomial64(21, 2)
	require.ErrorIs(t, err, ErrOverflow)
}
