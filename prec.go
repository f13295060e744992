package arith

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// EvalFloat computes the value of the expression with prec bits of precision.
// If prec is 0, the precision is 64.
//
// big.Float has no NaN, so operations whose results are undefined, such as
// 0/0, Inf-Inf, or a negative number to a fractional power, return a
// *DomainError. Dividing a nonzero number by zero gives an infinity, as Eval
// does. Powers follow the special cases of math.Pow, so 0^0 and 1^(1/0) are 1.
// Results beyond the range of float64 are computed in full.
func (n *Node) EvalFloat(prec uint) (*big.Float, error) {
	if prec == 0 {
		prec = 64
	}
	return n.evalFloat(prec)
}

func (n *Node) evalFloat(prec uint) (*big.Float, error) {
	if n.IsLeaf() {
		if !validNum(n.text) {
			return nil, &NumberError{Text: n.text}
		}
		r, _, err := new(big.Float).SetPrec(prec).Parse(n.text, 10)
		if err != nil {
			return nil, &NumberError{Text: n.text, Err: err}
		}
		return r, nil
	}
	l, err := n.left.evalFloat(prec)
	if err != nil {
		return nil, err
	}
	r, err := n.right.evalFloat(prec)
	if err != nil {
		return nil, err
	}
	if undefined(n.op, l, r) {
		return nil, &DomainError{Op: n.op, X: l, Y: r}
	}
	z := new(big.Float).SetPrec(prec)
	switch n.op {
	case Add:
		z.Add(l, r)
	case Sub:
		z.Sub(l, r)
	case Mul:
		z.Mul(l, r)
	case Div:
		z.Quo(l, r)
	case Pow:
		pow(z, l, r)
	default:
		panic("arith: invalid operator " + n.op.String())
	}
	return z, nil
}

// undefined reports whether l op r is NaN, which big.Float would panic on.
func undefined(op Operator, l, r *big.Float) bool {
	switch op {
	case Add:
		return l.IsInf() && r.IsInf() && l.Signbit() != r.Signbit()
	case Sub:
		return l.IsInf() && r.IsInf() && l.Signbit() == r.Signbit()
	case Mul:
		return l.IsInf() && r.Sign() == 0 || l.Sign() == 0 && r.IsInf()
	case Div:
		return l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf()
	case Pow:
		return l.Sign() < 0 && !l.IsInf() && !r.IsInf() && !r.IsInt()
	}
	return false
}

// guard is the number of extra bits used for intermediate results of powers.
const guard = 64

// pow sets z to x^y rounded to z's precision and returns z. x^y must not be
// undefined.
func pow(z, x, y *big.Float) *big.Float {
	one := big.NewFloat(1)
	switch {
	case y.Sign() == 0, x.Cmp(one) == 0:
		return z.SetInt64(1)

	case y.IsInf():
		switch new(big.Float).Abs(x).Cmp(one) {
		case 0:
			// (-1)^±Inf
			return z.SetInt64(1)
		case 1:
			if y.Sign() > 0 {
				return z.SetInf(false)
			}
		default:
			if y.Sign() < 0 {
				return z.SetInf(false)
			}
		}
		return z.SetInt64(0)

	case x.Sign() == 0, x.IsInf():
		// ±Inf^y is the reciprocal of ±0^y. The sign of either survives only
		// through an odd integer power.
		neg := x.Signbit() && oddInt(y)
		if x.IsInf() == (y.Sign() > 0) {
			return z.SetInf(neg)
		}
		z.SetInt64(0)
		if neg {
			z.Neg(z)
		}
		return z
	}

	if n, acc := y.Int64(); acc == big.Exact {
		return z.Set(powInt(z.Prec()+guard, x, n))
	}
	// The exponent is either fractional, which requires x > 0, or an integer
	// too large for int64, in which case the result is far outside float64
	// range unless |x| is very close to 1.
	neg := x.Sign() < 0 && oddInt(y)
	powLog(z, new(big.Float).Abs(x), y)
	if neg {
		z.Neg(z)
	}
	return z
}

// oddInt reports whether y is an odd integer. y must be finite.
func oddInt(y *big.Float) bool {
	if y.Sign() == 0 || !y.IsInt() {
		return false
	}
	// The lowest set bit of an integer y is 2^(exp-MinPrec).
	return y.MantExp(nil) == int(y.MinPrec())
}

// powInt computes x^n by squaring with prec bits of precision. Overflow and
// underflow of the exponent give Inf and 0.
func powInt(prec uint, x *big.Float, n int64) *big.Float {
	inv := n < 0
	u := uint64(n)
	if inv {
		u = -u
	}
	r := new(big.Float).SetPrec(prec).SetInt64(1)
	b := new(big.Float).SetPrec(prec).Set(x)
	for u > 0 {
		if u&1 != 0 {
			r.Mul(r, b)
		}
		u >>= 1
		if u > 0 {
			b.Mul(b, b)
		}
	}
	if inv {
		r.Quo(new(big.Float).SetInt64(1), r)
	}
	return r
}

// powLog sets z to x^y for positive finite x as 2^(y*log2(x)), splitting the
// power of two into an exact exponent and a fraction in [0, 1).
func powLog(z, x, y *big.Float) *big.Float {
	prec := z.Prec() + guard
	t := log2Times(prec, x, y)
	e := t.MantExp(nil)
	if e > 62 {
		// Far beyond the exponent range of big.Float.
		if t.Sign() > 0 {
			return z.SetInf(false)
		}
		return z.SetInt64(0)
	}
	if e > 0 {
		// t carries e integer bits, so the fraction needs as many more.
		prec += uint(e)
		t = log2Times(prec, x, y)
	}
	ki, _ := t.Int(nil)
	k := ki.Int64()
	if t.Sign() < 0 && !t.IsInt() {
		k--
	}
	switch {
	case k > big.MaxExp:
		return z.SetInf(false)
	case k < big.MinExp-int64(prec):
		return z.SetInt64(0)
	}
	frac := new(big.Float).SetPrec(prec).Sub(t, new(big.Float).SetInt64(k))
	r := new(big.Float).SetPrec(prec).SetInt64(1)
	if frac.Sign() != 0 {
		frac.Mul(frac, ln2(prec))
		bigfloat.Exp(r, frac)
	}
	return z.SetMantExp(r, int(k))
}

// log2Times computes y*log2(x) with prec bits of precision.
func log2Times(prec uint, x, y *big.Float) *big.Float {
	m := new(big.Float).SetPrec(prec)
	e := x.MantExp(m)
	l := bigfloat.Log(new(big.Float).SetPrec(prec), m)
	l.Quo(l, ln2(prec))
	l.Add(l, new(big.Float).SetInt64(int64(e)))
	return l.Mul(l, y)
}

func ln2(prec uint) *big.Float {
	return bigfloat.Log(new(big.Float).SetPrec(prec), big.NewFloat(2))
}

// EvalFloatString is a shortcut to parse a string expression and compute its
// value with prec bits of precision.
func EvalFloatString(src string, prec uint) (*big.Float, error) {
	n, err := Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return n.EvalFloat(prec)
}
