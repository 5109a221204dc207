// Package calculus implements numeric differentiation, secant root-finding
// and elementary definite-integral approximations (fixed-bin Riemann sums,
// midpoint and trapezoid rules) for arbitrary unary real functions over
// closed intervals.
//
// The differentiation step and the Riemann bin count are process-wide
// settings. No synchronization is provided: the package assumes
// single-threaded use, or external locking by the integrator.
package calculus

import (
	"github.com/numkit/numkit/interval"
)

// Function is a unary real function.
type Function func(x float64) float64

// DefaultStep is the differentiation step used until SetStep is called.
const DefaultStep = 1e-8

var step = float64(DefaultStep)

// SetStep sets the process-wide forward-difference step used by Derivative.
// It returns ErrNegativeStep and leaves the stored step unchanged if dx is
// negative. A zero step is accepted and makes Derivative divide by zero.
func SetStep(dx float64) error {
	if dx < 0 {
		return ErrNegativeStep
	}
	step = dx
	return nil
}

// Step returns the current process-wide differentiation step.
func Step() float64 {
	return step
}

// Derivative approximates f'(x) by the forward difference
// (f(x+dx) - f(x)) / dx with the process-wide step dx. No accuracy
// correction is applied and a zero step is not guarded against.
func Derivative(f Function, x float64) float64 {
	return (f(x+step) - f(x)) / step
}

// SecantRoot approximates a root of f by the secant method seeded with
// x0 = in.Min() and x1 = in.Max(), iterating
//
//	x2 = x1 - f(x1)*(x1-x0)/(f(x1)-f(x0))
//
// exactly iterations times. There is no convergence check: the caller trades
// precision for compute cost through the iteration count. If f(x1) == f(x0)
// at any step the division by zero propagates as NaN or Inf through the
// remaining iterations. It returns ErrZeroIterations if iterations is 0.
func SecantRoot(f Function, in interval.Interval, iterations uint) (float64, error) {
	if iterations == 0 {
		return 0, ErrZeroIterations
	}

	x0, x1 := in.Min(), in.Max()
	var x2 float64
	for i := uint(0); i < iterations; i++ {
		x2 = x1 - f(x1)*(x1-x0)/(f(x1)-f(x0))
		x0, x1 = x1, x2
	}

	return x2, nil
}
