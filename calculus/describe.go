package calculus

import (
	"github.com/montanaflynn/stats"

	"github.com/numkit/numkit/interval"
)

// Summary holds descriptive statistics of a function sampled over an
// interval.
type Summary struct {
	Min, Max float64
	Mean     float64
	Median   float64
	StdDev   float64
}

// Describe samples f at n uniformly spaced points spanning in, endpoints
// included, and returns summary statistics of the sampled values. It returns
// ErrInvalidSampleCount if n < 2.
func Describe(f Function, in interval.Interval, n int) (Summary, error) {
	if n < 2 {
		return Summary{}, ErrInvalidSampleCount
	}

	h := in.Width() / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = f(in.Min() + float64(i)*h)
	}

	var (
		s   Summary
		err error
	)
	if s.Min, err = stats.Min(values); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(values); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = stats.Mean(values); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(values); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(values); err != nil {
		return Summary{}, err
	}

	return s, nil
}
