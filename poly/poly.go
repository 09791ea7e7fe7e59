// Package poly implements dense univariate polynomials over the finite
// fields of package gf: ring arithmetic, Euclidean division, gcd, modular
// exponentiation, factorization into irreducibles, root finding, and
// subfield embeddings with their retractions.
package poly

import (
	"errors"
	"math/big"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
)

// ErrDivisionByZero is returned when dividing by the zero polynomial.
var ErrDivisionByZero = errors.New("poly: division by zero polynomial")

// Poly is a dense univariate polynomial over a finite field. Coefficients
// are stored in ascending degree order with the leading (non-zero) term
// last; the zero polynomial has an empty coefficient slice.
type Poly struct {
	F      *gf.Field
	Coeffs []gf.Element
}

// NewPoly returns the polynomial with the given coefficients over f,
// trimming leading zeros. The coefficient slice is copied.
func NewPoly(f *gf.Field, coeffs []gf.Element) Poly {
	d := len(coeffs)
	for d > 0 && f.IsZero(coeffs[d-1]) {
		d--
	}
	cp := make([]gf.Element, d)
	for i := 0; i < d; i++ {
		cp[i] = f.Copy(coeffs[i])
	}
	return Poly{F: f, Coeffs: cp}
}

// NewPolyUint64 returns the polynomial whose i-th coefficient is the image
// of coeffs[i] in f.
func NewPolyUint64(f *gf.Field, coeffs []uint64) Poly {
	els := make([]gf.Element, len(coeffs))
	for i, c := range coeffs {
		els[i] = f.FromUint64(c)
	}
	return NewPoly(f, els)
}

// Zero returns the zero polynomial over f.
func Zero(f *gf.Field) Poly {
	return Poly{F: f}
}

// One returns the constant polynomial 1 over f.
func One(f *gf.Field) Poly {
	return NewPoly(f, []gf.Element{f.One()})
}

// Gen returns the polynomial x over f.
func Gen(f *gf.Field) Poly {
	return NewPoly(f, []gf.Element{f.Zero(), f.One()})
}

// Rand returns a polynomial of degree at most deg with coefficients drawn
// uniformly from f.
func Rand(f *gf.Field, deg int, prng sampling.PRNG) Poly {
	coeffs := make([]gf.Element, deg+1)
	for i := range coeffs {
		coeffs[i] = f.Rand(prng)
	}
	return NewPoly(f, coeffs)
}

// Degree returns the degree of p, with -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.Coeffs) == 0
}

// IsOne reports whether p is the constant polynomial 1.
func (p Poly) IsOne() bool {
	return len(p.Coeffs) == 1 && p.F.IsOne(p.Coeffs[0])
}

// LeadingCoeff returns the leading coefficient of p, which must be non-zero.
func (p Poly) LeadingCoeff() gf.Element {
	return p.Coeffs[len(p.Coeffs)-1]
}

// Coeff returns the coefficient of degree i, zero beyond the degree.
func (p Poly) Coeff(i int) gf.Element {
	if i < 0 || i > p.Degree() {
		return p.F.Zero()
	}
	return p.Coeffs[i]
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() Poly {
	return NewPoly(p.F, p.Coeffs)
}

// Equal reports whether p and q have identical coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if !p.F.Equal(p.Coeffs[i], q.Coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	f := p.F
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	coeffs := make([]gf.Element, n)
	for i := range coeffs {
		coeffs[i] = f.Add(p.Coeff(i), q.Coeff(i))
	}
	return NewPoly(f, coeffs)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	coeffs := make([]gf.Element, len(p.Coeffs))
	for i := range coeffs {
		coeffs[i] = p.F.Neg(p.Coeffs[i])
	}
	return Poly{F: p.F, Coeffs: coeffs}
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Zero(p.F)
	}
	f := p.F
	coeffs := make([]gf.Element, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range coeffs {
		coeffs[i] = f.Zero()
	}
	for i, a := range p.Coeffs {
		if f.IsZero(a) {
			continue
		}
		for j, b := range q.Coeffs {
			coeffs[i+j] = f.Add(coeffs[i+j], f.Mul(a, b))
		}
	}
	return NewPoly(f, coeffs)
}

// MulScalar returns c * p.
func (p Poly) MulScalar(c gf.Element) Poly {
	f := p.F
	coeffs := make([]gf.Element, len(p.Coeffs))
	for i := range coeffs {
		coeffs[i] = f.Mul(p.Coeffs[i], c)
	}
	return NewPoly(f, coeffs)
}

// QuoRem returns the quotient and remainder of the Euclidean division of p
// by q.
func (p Poly) QuoRem(q Poly) (quo, rem Poly, err error) {
	if q.IsZero() {
		return Poly{}, Poly{}, ErrDivisionByZero
	}
	f := p.F
	dq := q.Degree()
	inv, _ := f.Inv(q.LeadingCoeff())

	r := make([]gf.Element, len(p.Coeffs))
	for i := range r {
		r[i] = f.Copy(p.Coeffs[i])
	}
	var qc []gf.Element
	if len(r)-1 >= dq {
		qc = make([]gf.Element, len(r)-dq)
		for i := range qc {
			qc[i] = f.Zero()
		}
	}
	for dr := len(r) - 1; dr >= dq; dr-- {
		if f.IsZero(r[dr]) {
			continue
		}
		c := f.Mul(r[dr], inv)
		qc[dr-dq] = c
		for i := 0; i <= dq; i++ {
			r[dr-dq+i] = f.Sub(r[dr-dq+i], f.Mul(c, q.Coeffs[i]))
		}
	}
	return NewPoly(f, qc), NewPoly(f, r), nil
}

// Rem returns the remainder of p divided by q.
func (p Poly) Rem(q Poly) (Poly, error) {
	_, r, err := p.QuoRem(q)
	return r, err
}

// Quo returns the quotient of p divided by q.
func (p Poly) Quo(q Poly) (Poly, error) {
	quo, _, err := p.QuoRem(q)
	return quo, err
}

// Monic returns p divided by its leading coefficient. The zero polynomial
// is returned unchanged.
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return p.CopyNew()
	}
	inv, _ := p.F.Inv(p.LeadingCoeff())
	return p.MulScalar(inv)
}

// GCD returns the monic greatest common divisor of p and q.
func (p Poly) GCD(q Poly) Poly {
	a, b := p.CopyNew(), q.CopyNew()
	for !b.IsZero() {
		r, _ := a.Rem(b)
		a, b = b, r
	}
	return a.Monic()
}

// Pow returns p^k.
func (p Poly) Pow(k int) Poly {
	res := One(p.F)
	base := p.CopyNew()
	for k > 0 {
		if k&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
		k >>= 1
	}
	return res
}

// PowMod returns p^e mod m for a non-negative big integer exponent.
func (p Poly) PowMod(e *big.Int, m Poly) (Poly, error) {
	base, err := p.Rem(m)
	if err != nil {
		return Poly{}, err
	}
	res := One(p.F)
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			if res, err = res.Mul(base).Rem(m); err != nil {
				return Poly{}, err
			}
		}
		if base, err = base.Mul(base).Rem(m); err != nil {
			return Poly{}, err
		}
	}
	return res, nil
}

// Eval returns p evaluated at x.
func (p Poly) Eval(x gf.Element) gf.Element {
	f := p.F
	res := f.Zero()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		res = f.Add(f.Mul(res, x), p.Coeffs[i])
	}
	return res
}

// Derivative returns the formal derivative of p.
func (p Poly) Derivative() Poly {
	if p.Degree() < 1 {
		return Zero(p.F)
	}
	f := p.F
	coeffs := make([]gf.Element, p.Degree())
	for i := 1; i <= p.Degree(); i++ {
		coeffs[i-1] = f.MulUint64(p.Coeffs[i], uint64(i))
	}
	return NewPoly(f, coeffs)
}

// Shift returns p * x^k.
func (p Poly) Shift(k int) Poly {
	if p.IsZero() {
		return p.CopyNew()
	}
	f := p.F
	coeffs := make([]gf.Element, len(p.Coeffs)+k)
	for i := 0; i < k; i++ {
		coeffs[i] = f.Zero()
	}
	copy(coeffs[k:], p.Coeffs)
	return NewPoly(f, coeffs)
}
