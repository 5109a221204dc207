package poly

import (
	"fmt"
	"math"
	"strings"
)

// Format returns a human-readable representation of p, one token
// "<sign> <abs-coefficient>x^<power> " per term in ascending power order,
// with the absolute coefficient rendered using the given fmt verb.
func (p *Polynomial) Format(format string) string {
	var b strings.Builder
	for k, c := range p.coeffs {
		if c < 0 {
			b.WriteString("- ")
		} else {
			b.WriteString("+ ")
		}
		fmt.Fprintf(&b, format, math.Abs(c))
		fmt.Fprintf(&b, "x^%d ", k)
	}
	return b.String()
}

// String returns Format with the %g verb.
func (p *Polynomial) String() string {
	return p.Format("%g")
}
