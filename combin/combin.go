// Package combin implements elementary combinatorics: factorials and
// binomial coefficients over unsigned integers, with explicit overflow
// detection.
package combin

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOverflow is returned when a factorial no longer fits the result
	// type; the returned value is 0.
	ErrOverflow = errors.New("combin: factorial overflow")

	// ErrInvalidArguments is returned by the binomial coefficient when
	// m < n; the returned value is 0.
	ErrInvalidArguments = errors.New("combin: m is smaller than n")
)

func factorial[T constraints.Unsigned](x T) (T, error) {
	res := T(1)
	for i := T(2); i <= x; i++ {
		next := res * i
		if next/i != res {
			return 0, ErrOverflow
		}
		res = next
	}
	return res, nil
}

func binomial[T constraints.Unsigned](m, n T) (T, error) {
	if m < n {
		return 0, ErrInvalidArguments
	}
	fm, err := factorial(m)
	if err != nil {
		return 0, err
	}
	fn, err := factorial(n)
	if err != nil {
		return 0, err
	}
	fmn, err := factorial(m - n)
	if err != nil {
		return 0, err
	}
	return fm / (fn * fmn), nil
}

// Factorial returns x! in 32-bit range. Factorial(0) is 1 and the largest
// representable input is 12; larger inputs return (0, ErrOverflow).
func Factorial(x uint32) (uint32, error) {
	return factorial(x)
}

// Factorial64 returns x! in 64-bit range. The largest representable input is
// 20; larger inputs return (0, ErrOverflow).
func Factorial64(x uint64) (uint64, error) {
	return factorial(x)
}

// Binomial returns the binomial coefficient C(m, n) = m!/(n!(m-n)!) in
// 32-bit range. It returns (0, ErrInvalidArguments) if m < n, and
// (0, ErrOverflow) if any of the intermediate factorials overflows. Note
// that C(m, n) itself may be representable even when m! is not; this
// factorial-based formulation does not exploit that.
func Binomial(m, n uint32) (uint32, error) {
	return binomial(m, n)
}

// Binomial64 is Binomial in 64-bit range.
func Binomial64(m, n uint64) (uint64, error) {
	return binomial(m, n)
}
