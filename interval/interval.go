// Package interval implements closed real intervals [min, max] used as
// integration and root-search domains.
package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when an interval is constructed with min > max.
var ErrInvalidRange = errors.New("interval: min is greater than max")

// Interval is an immutable closed interval [min, max] with min <= max.
// The zero value is the degenerate interval [0, 0].
type Interval struct {
	min, max float64
}

// New returns the interval [min, max].
// It returns ErrInvalidRange if min > max.
func New(min, max float64) (Interval, error) {
	if min > max {
		return Interval{}, ErrInvalidRange
	}
	return Interval{min: min, max: max}, nil
}

// Min returns the lower bound of the interval.
func (in Interval) Min() float64 {
	return in.min
}

// Max returns the upper bound of the interval.
func (in Interval) Max() float64 {
	return in.max
}

// Width returns max - min.
func (in Interval) Width() float64 {
	return in.max - in.min
}

// Contains returns true if x lies in the closed interval.
func (in Interval) Contains(x float64) bool {
	return in.min <= x && x <= in.max
}

func (in Interval) String() string {
	return fmt.Sprintf("[%g, %g]", in.min, in.max)
}
