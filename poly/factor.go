package poly

import (
	"fmt"
	"math/big"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
)

// Factor is an irreducible monic factor together with its multiplicity.
type Factor struct {
	P Poly
	E int
}

// IsIrreducible reports whether p is irreducible over its field, by the
// Rabin criterion. Constants and the zero polynomial are not irreducible.
func (p Poly) IsIrreducible() bool {
	n := p.Degree()
	if n < 1 {
		return false
	}
	if n == 1 {
		return true
	}
	f := p.Monic()
	x := Gen(p.F)
	q := p.F.Cardinality()

	xqn, err := x.PowMod(new(big.Int).Exp(q, big.NewInt(int64(n)), nil), f)
	if err != nil || !xqn.Equal(x.Rem0(f)) {
		return false
	}
	for _, l := range primeDivisorsInt(n) {
		xe, err := x.PowMod(new(big.Int).Exp(q, big.NewInt(int64(n/l)), nil), f)
		if err != nil {
			return false
		}
		if g := f.GCD(xe.Sub(x)); g.Degree() > 0 {
			return false
		}
	}
	return true
}

// Rem0 is Rem for a divisor known to be non-zero.
func (p Poly) Rem0(m Poly) Poly {
	r, err := p.Rem(m)
	if err != nil {
		panic(err)
	}
	return r
}

// QuoRem0 is QuoRem for a divisor known to be non-zero.
func (p Poly) QuoRem0(m Poly) (quo, rem Poly) {
	quo, rem, err := p.QuoRem(m)
	if err != nil {
		panic(err)
	}
	return quo, rem
}

// Factorize returns the factorization of p into monic irreducibles with
// multiplicities, together with its leading coefficient. The factor order
// is deterministic: by degree, then by coefficient order. The zero
// polynomial cannot be factored.
func (p Poly) Factorize(prng sampling.PRNG) (unit gf.Element, factors []Factor, err error) {
	if p.IsZero() {
		return nil, nil, fmt.Errorf("poly: factorization of the zero polynomial is not defined")
	}
	unit = p.F.Copy(p.LeadingCoeff())
	f := p.Monic()
	if f.Degree() == 0 {
		return unit, nil, nil
	}

	distinct, err := f.distinctIrreducibles(prng)
	if err != nil {
		return nil, nil, err
	}
	sortFactors(distinct)

	for _, h := range distinct {
		e := 0
		for {
			quo, rem := f.QuoRem0(h)
			if !rem.IsZero() {
				break
			}
			f = quo
			e++
		}
		factors = append(factors, Factor{P: h, E: e})
	}
	return unit, factors, nil
}

// distinctIrreducibles returns the distinct monic irreducible factors of the
// monic polynomial f.
func (f Poly) distinctIrreducibles(prng sampling.PRNG) (out []Poly, err error) {
	g := f.CopyNew()
	for g.Degree() > 0 {
		d := g.Derivative()
		if d.IsZero() {
			// g is a p-th power: replace it by its p-th root.
			g = g.pthRoot()
			continue
		}
		sqf, _ := g.Quo(g.GCD(d))
		irr, err := sqf.splitSquarefree(prng)
		if err != nil {
			return nil, err
		}
		for _, h := range irr {
			if !containsPoly(out, h) {
				out = append(out, h)
			}
		}
		g, _ = g.Quo(sqf)
	}
	return out, nil
}

// pthRoot returns the p-th root of a polynomial lying in F_q[x^p].
func (f Poly) pthRoot() Poly {
	fld := f.F
	p := int(fld.Characteristic())
	coeffs := make([]gf.Element, f.Degree()/p+1)
	for i := range coeffs {
		// p-th root of a coefficient: a^(p^(n-1)).
		coeffs[i] = fld.Frobenius(f.Coeff(i*p), fld.Degree()-1)
	}
	return NewPoly(fld, coeffs)
}

// splitSquarefree factors a squarefree monic polynomial into irreducibles by
// distinct-degree then equal-degree (Cantor-Zassenhaus) splitting.
func (f Poly) splitSquarefree(prng sampling.PRNG) (out []Poly, err error) {
	fld := f.F
	q := fld.Cardinality()
	x := Gen(fld)

	u := f.CopyNew()
	h := x.CopyNew()
	for i := 1; 2*i <= u.Degree(); i++ {
		if h, err = h.PowMod(q, u); err != nil {
			return nil, err
		}
		g := u.GCD(h.Sub(x))
		if g.Degree() > 0 {
			split, err := g.equalDegree(i, prng)
			if err != nil {
				return nil, err
			}
			out = append(out, split...)
			u, _ = u.Quo(g)
			h = h.Rem0(u)
		}
	}
	if u.Degree() > 0 {
		out = append(out, u)
	}
	return out, nil
}

// equalDegree splits a squarefree monic product of irreducibles of common
// degree d into its factors.
func (f Poly) equalDegree(d int, prng sampling.PRNG) ([]Poly, error) {
	if f.Degree() == d {
		return []Poly{f}, nil
	}
	fld := f.F
	q := fld.Cardinality()

	for attempt := 0; attempt < maxSplitAttempts; attempt++ {
		a := Rand(fld, f.Degree()-1, prng)
		if a.Degree() < 1 {
			continue
		}
		var b Poly
		if fld.Characteristic() == 2 {
			// Additive trace over F_2: a + a^2 + ... + a^(2^(kd-1)) mod f.
			k := fld.Degree() * d
			b = a.CopyNew()
			sq := a.CopyNew()
			for j := 1; j < k; j++ {
				sq = sq.Mul(sq).Rem0(f)
				b = b.Add(sq)
			}
		} else {
			// Euler criterion: a^((q^d-1)/2) - 1 mod f.
			e := new(big.Int).Exp(q, big.NewInt(int64(d)), nil)
			e.Sub(e, big.NewInt(1))
			e.Rsh(e, 1)
			pow, err := a.PowMod(e, f)
			if err != nil {
				return nil, err
			}
			b = pow.Sub(One(fld))
		}
		g := f.GCD(b)
		if g.Degree() == 0 || g.Degree() == f.Degree() {
			continue
		}
		left, err := g.equalDegree(d, prng)
		if err != nil {
			return nil, err
		}
		rest, _ := f.Quo(g)
		right, err := rest.equalDegree(d, prng)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}
	return nil, fmt.Errorf("poly: equal-degree splitting did not converge after %d attempts", maxSplitAttempts)
}

// maxSplitAttempts bounds the rejection loops of the probabilistic
// splitting routines. Each attempt succeeds with probability close to 1/2,
// so reaching the bound indicates a defect rather than bad luck.
const maxSplitAttempts = 512

// Roots returns the distinct roots of p in its coefficient field.
func (p Poly) Roots(prng sampling.PRNG) ([]gf.Element, error) {
	if p.IsZero() || p.Degree() == 0 {
		return nil, nil
	}
	fld := p.F
	x := Gen(fld)
	f := p.Monic()

	// gcd(f, x^q - x) collects the linear factors.
	xq, err := x.PowMod(fld.Cardinality(), f)
	if err != nil {
		return nil, err
	}
	lin := f.GCD(xq.Sub(x))
	if lin.Degree() == 0 {
		return nil, nil
	}
	factors, err := lin.equalDegree(1, prng)
	if err != nil {
		return nil, err
	}
	roots := make([]gf.Element, len(factors))
	for i, h := range factors {
		roots[i] = fld.Neg(h.Coeff(0))
	}
	return roots, nil
}

// sortFactors orders monic polynomials by degree, then coefficientwise from
// the leading coefficient down.
func sortFactors(fs []Poly) {
	less := func(a, b Poly) bool {
		if a.Degree() != b.Degree() {
			return a.Degree() < b.Degree()
		}
		for i := a.Degree(); i >= 0; i-- {
			ca, cb := a.Coeff(i), b.Coeff(i)
			for j := len(ca) - 1; j >= 0; j-- {
				if ca[j] != cb[j] {
					return ca[j] < cb[j]
				}
			}
		}
		return false
	}
	for i := 1; i < len(fs); i++ {
		for j := i; j > 0 && less(fs[j], fs[j-1]); j-- {
			fs[j], fs[j-1] = fs[j-1], fs[j]
		}
	}
}

func containsPoly(fs []Poly, p Poly) bool {
	for _, f := range fs {
		if f.Equal(p) {
			return true
		}
	}
	return false
}

func primeDivisorsInt(n int) (ps []int) {
	for l := 2; l*l <= n; l++ {
		if n%l == 0 {
			ps = append(ps, l)
			for n%l == 0 {
				n /= l
			}
		}
	}
	if n > 1 {
		ps = append(ps, n)
	}
	return
}
