package poly

import "errors"

var (
	// ErrInvalidDegree is returned when a polynomial is constructed with a
	// negative degree.
	ErrInvalidDegree = errors.New("poly: negative degree")

	// ErrMissingCoefficients is returned when fewer than degree+1
	// coefficients are supplied to New.
	ErrMissingCoefficients = errors.New("poly: fewer coefficients than degree+1")

	// ErrIndexExceedsDegree is returned by Coefficient for an index outside
	// [0, degree]. The call still returns a usable value (the leading
	// coefficient) so that callers reading past the degree degrade
	// gracefully instead of failing hard.
	ErrIndexExceedsDegree = errors.New("poly: coefficient index exceeds degree")
)
