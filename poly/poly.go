// Package poly implements single-variable real polynomials stored as dense
// coefficient slices indexed by power, along with their elementary calculus:
// evaluation, differentiation, antidifferentiation and definite integration.
package poly

import (
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

// Polynomial is a real polynomial of a single variable. Coefficients are
// stored in ascending power order: coeffs[k] is the coefficient of x^k and
// len(coeffs) is always degree+1. The coefficient slice is owned by the
// polynomial and never shared between two instances.
type Polynomial struct {
	coeffs []float64
}

// New returns the polynomial of the given degree whose coefficient of x^k is
// coeffs[k]. Exactly degree+1 coefficients are copied; extra values in coeffs
// are ignored. It returns ErrInvalidDegree if degree is negative and
// ErrMissingCoefficients if coeffs holds fewer than degree+1 values.
func New(degree int, coeffs []float64) (*Polynomial, error) {
	if degree < 0 {
		return nil, ErrInvalidDegree
	}
	if len(coeffs) < degree+1 {
		return nil, ErrMissingCoefficients
	}
	return &Polynomial{coeffs: slices.Clone(coeffs[:degree+1])}, nil
}

// FromCoefficients returns the polynomial whose coefficients are exactly
// coeffs, with the degree inferred as len(coeffs)-1.
func FromCoefficients(coeffs []float64) (*Polynomial, error) {
	return New(len(coeffs)-1, coeffs)
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficient returns the coefficient of x^index. For an index outside
// [0, degree] it returns the leading coefficient together with
// ErrIndexExceedsDegree.
func (p *Polynomial) Coefficient(index int) (float64, error) {
	if index < 0 || index > p.Degree() {
		return p.Leading(), ErrIndexExceedsDegree
	}
	return p.coeffs[index], nil
}

// Leading returns the coefficient of the highest-power term.
func (p *Polynomial) Leading() float64 {
	return p.coeffs[p.Degree()]
}

// Trailing returns the constant term.
func (p *Polynomial) Trailing() float64 {
	return p.coeffs[0]
}

// IsConstant returns true if the polynomial has degree 0.
func (p *Polynomial) IsConstant() bool {
	return p.Degree() == 0
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{coeffs: slices.Clone(p.coeffs)}
}

// Equal returns true if p and q have the same degree and element-wise equal
// coefficients.
func (p *Polynomial) Equal(q *Polynomial) bool {
	return cmp.Equal(p.coeffs, q.coeffs)
}

// Compare compares p and q and returns:
//   - 0 if both have the same degree and element-wise equal coefficients;
//   - deg(p)-deg(q) if the degrees differ;
//   - deg(p)+1-i otherwise, where i is the lowest index at which the
//     coefficients differ.
//
// Only the sign and zeroness of the result are meaningful. The convention is
// not monotonic and does not induce a total order, so it must not be used as
// a sort comparator.
func (p *Polynomial) Compare(q *Polynomial) int {
	if p.Degree() != q.Degree() {
		return p.Degree() - q.Degree()
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return p.Degree() + 1 - i
		}
	}
	return 0
}
