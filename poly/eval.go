package poly

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Evaluate returns p(x) as the direct power sum sum_k coeffs[k] * x^k in
// plain double precision.
func (p *Polynomial) Evaluate(x float64) (y float64) {
	for k, c := range p.coeffs {
		y += c * math.Pow(x, float64(k))
	}
	return
}

// EvaluateBig returns p(x) computed at the precision of x.
func (p *Polynomial) EvaluateBig(x *big.Float) (y *big.Float) {

	prec := x.Prec()

	y = new(big.Float).SetPrec(prec).SetFloat64(p.coeffs[0])

	if x.Sign() == 0 {
		return
	}

	// bigfloat.Pow requires a positive base, so powers are taken on |x|
	// and the sign restored on odd exponents.
	neg := x.Sign() < 0
	abs := new(big.Float).SetPrec(prec).Abs(x)

	k := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec)

	for i := 1; i < len(p.coeffs); i++ {
		if p.coeffs[i] == 0 {
			continue
		}
		k.SetInt64(int64(i))
		term.SetFloat64(p.coeffs[i])
		term.Mul(term, bigfloat.Pow(abs, k))
		if neg && i&1 == 1 {
			term.Neg(term)
		}
		y.Add(y, term)
	}

	return
}

// Func returns p as a unary function. The closure captures p itself, so
// functions obtained from different polynomials coexist independently.
func (p *Polynomial) Func() func(x float64) float64 {
	return func(x float64) float64 {
		return p.Evaluate(x)
	}
}
