package calculus

import "errors"

var (
	// ErrNegativeStep is returned by SetStep for a negative step; the stored
	// step is left unchanged.
	ErrNegativeStep = errors.New("calculus: negative differentiation step")

	// ErrZeroIterations is returned by SecantRoot when no iterations are
	// requested.
	ErrZeroIterations = errors.New("calculus: iteration count is zero")

	// ErrNegativeSubintervals is returned by the composite integration rules
	// for a negative subdivision count.
	ErrNegativeSubintervals = errors.New("calculus: negative subinterval count")

	// ErrInvalidSampleCount is returned by Describe when fewer than two
	// sample points are requested.
	ErrInvalidSampleCount = errors.New("calculus: sample count must be at least 2")
)
