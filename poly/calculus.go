package poly

import (
	"github.com/numkit/numkit/interval"
)

// Derivative returns the derivative of p as a new polynomial: the
// coefficient of x^k in the result is coeffs[k+1]*(k+1). The derivative of a
// constant polynomial is the zero polynomial of degree 0.
func (p *Polynomial) Derivative() *Polynomial {
	if p.IsConstant() {
		return &Polynomial{coeffs: []float64{0}}
	}
	coeffs := make([]float64, p.Degree())
	for k := range coeffs {
		coeffs[k] = p.coeffs[k+1] * float64(k+1)
	}
	return &Polynomial{coeffs: coeffs}
}

// Antiderivative returns the antiderivative of p with integration constant c
// as a new polynomial of degree deg(p)+1: the constant term is c and the
// coefficient of x^(k+1) is coeffs[k]/(k+1).
func (p *Polynomial) Antiderivative(c float64) *Polynomial {
	coeffs := make([]float64, p.Degree()+2)
	coeffs[0] = c
	for k, ck := range p.coeffs {
		coeffs[k+1] = ck / float64(k+1)
	}
	return &Polynomial{coeffs: coeffs}
}

// Integrate returns the definite integral of p over in, computed as
// F(max) - F(min) where F is the antiderivative of p with constant 0.
func (p *Polynomial) Integrate(in interval.Interval) float64 {
	f := p.Antiderivative(0)
	return f.Evaluate(in.Max()) - f.Evaluate(in.Min())
}
