package calculus

import (
	"github.com/numkit/numkit/interval"
)

// DefaultBins is the Riemann-sum bin count used until SetBins is called.
const DefaultBins = 1000

var bins = uint64(DefaultBins)

// SetBins sets the process-wide bin count used by IntegrateBins.
func SetBins(n uint64) {
	bins = n
}

// Bins returns the current process-wide bin count.
func Bins() uint64 {
	return bins
}

// IntegrateBins approximates the integral of f over in by a left Riemann sum
// with the process-wide bin count. The accumulation loop advances a floating
// point cursor by the bin width and stops once it passes in.Max(), so
// rounding drift may make it take one step more or fewer than the nominal
// bin count.
func IntegrateBins(f Function, in interval.Interval) float64 {
	delta := in.Width() / float64(bins)
	var area float64
	for x := in.Min(); x <= in.Max(); x += delta {
		area += delta * f(x)
	}
	return area
}

// IntegrateRectangle approximates the integral of f over in by the midpoint
// rule. With subintervals == 0 the interval is taken whole and the result is
// Width * f(midpoint); with subintervals > 0 the interval is split into that
// many equal pieces and the values of f at the piece midpoints are summed,
// scaled by the piece width. It returns ErrNegativeSubintervals if
// subintervals is negative.
func IntegrateRectangle(f Function, in interval.Interval, subintervals int) (float64, error) {
	if subintervals < 0 {
		return 0, ErrNegativeSubintervals
	}

	width := in.Width()
	if subintervals == 0 {
		return width * f(in.Min()+width/2), nil
	}

	h := width / float64(subintervals)

	var sum float64
	for k := 0; k < subintervals; k++ {
		sum += f(in.Min() + (float64(k)+0.5)*h)
	}

	return h * sum, nil
}

// IntegrateTrapezoid approximates the integral of f over in by the trapezoid
// rule. With subintervals == 0 the result is Width * (f(min)+f(max))/2; with
// subintervals > 0 the composite rule sums the interior points with the two
// endpoints halved. The rule is exact for constant and affine functions at
// any subdivision. It returns ErrNegativeSubintervals if subintervals is
// negative.
func IntegrateTrapezoid(f Function, in interval.Interval, subintervals int) (float64, error) {
	if subintervals < 0 {
		return 0, ErrNegativeSubintervals
	}

	width := in.Width()
	ends := f(in.Min()) + f(in.Max())

	if subintervals == 0 {
		return width * ends / 2, nil
	}

	h := width / float64(subintervals)

	sum := ends / 2
	for k := 1; k <= subintervals-1; k++ {
		sum += f(in.Min() + float64(k)*h)
	}

	return h * sum, nil
}
