package skew

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/linalg"
	"github.com/Shubhamditya36/sagetrac-mirror/poly"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
)

// Side selects between the right-hand and left-hand divisor theory of the
// ring. Left-sided questions are answered through the adjoint
// anti-isomorphism.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

// Distribution selects how randomized divisor routines pick their output.
type Distribution int

const (
	// DistributionDefault picks an arbitrary valid divisor, randomized but
	// with no distributional guarantee.
	DistributionDefault Distribution = iota
	// DistributionUniform picks uniformly among all valid divisors.
	DistributionUniform
)

func (d Distribution) validate() error {
	if d != DistributionDefault && d != DistributionUniform {
		return fmt.Errorf("%w: unknown distribution %d", ErrInvalidArgument, int(d))
	}
	return nil
}

// IrreducibleDivisorWithNorm returns a monic irreducible divisor of p, on the
// given side, whose reduced norm is N. N must be a monic irreducible
// polynomial over the center field. With DistributionUniform the divisor is
// drawn uniformly among all such divisors; otherwise an arbitrary one is
// returned, randomized whenever more than one exists.
//
// It returns ErrNoSuchDivisor when N does not divide the reduced norm of p.
func (p *Poly) IrreducibleDivisorWithNorm(N poly.Poly, side Side, dist Distribution) (*Poly, error) {
	if err := dist.validate(); err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, ErrUndefined
	}
	if side == SideLeft {
		d, err := p.Adjoint().IrreducibleDivisorWithNorm(N, SideRight, dist)
		if err != nil {
			return nil, err
		}
		return d.Adjoint(), nil
	}
	if N.F != p.ring.center {
		return nil, fmt.Errorf("%w: norm is not a polynomial over the center field", ErrInvalidArgument)
	}
	if !N.IsIrreducible() {
		return nil, ErrNotIrreducible
	}

	rn := p.ring

	// The prime z = X^r is special: the only irreducible skew polynomial
	// with reduced norm z is X itself, and it divides p exactly when the
	// constant coefficient vanishes.
	if N.Equal(rn.CenterGen()) {
		if p.Valuation() < 1 {
			return nil, fmt.Errorf("%w: the constant coefficient is non-zero", ErrNoSuchDivisor)
		}
		return rn.Gen(), nil
	}

	d0, err := p.divisorRepresentative(N)
	if err != nil {
		return nil, err
	}

	t, err := p.Type(N)
	if err != nil {
		return nil, err
	}
	if t.First() == 1 {
		return d0, nil
	}

	// More than one divisor with this norm exists: transport the cached
	// representative along a random non-zero element of
	// Hom(R/Rp, R/Rd0). Uniform elements give uniform divisors, since
	// every divisor arises from exactly L-1 of them.
	hom, err := rn.homKernel(p.Monic(), d0, d0.Degree())
	if err != nil {
		return nil, err
	}
	for i := 0; i < maxSampling; i++ {
		u := rn.randomCombination(hom)
		if u.IsZero() {
			continue
		}
		return transportDivisor(u, d0)
	}
	return nil, ErrSamplingBudget
}

// divisorRepresentative returns the cached irreducible right divisor of p
// with reduced norm N, computing and caching it on first use. A nil cache
// entry records that no divisor exists.
func (p *Poly) divisorRepresentative(N poly.Poly) (*Poly, error) {
	key := fingerprintCenter(N)
	if d, ok := p.divisors[key]; ok {
		if d == nil {
			return nil, ErrNoSuchDivisor
		}
		return d, nil
	}
	if p.divisors == nil {
		p.divisors = make(map[[32]byte]*Poly)
	}

	lift, err := p.ring.Lift(N)
	if err != nil {
		return nil, err
	}
	g := p.RightGCD(lift)
	if g.Degree() <= 0 {
		p.divisors[key] = nil
		return nil, ErrNoSuchDivisor
	}
	d, err := p.ring.rdivisor(g, N)
	if err != nil {
		return nil, err
	}
	p.divisors[key] = d
	return d, nil
}

// rdivisor returns a monic irreducible right divisor of P with reduced norm
// N, where P is a right divisor of the central lift of N (so its reduced
// norm is a power of N). The module R/RP is semisimple and isotypic; any
// zero divisor of its endomorphism ring cuts P down, and the eigenring
// realizes that endomorphism ring concretely as polynomials of degree below
// deg(P).
func (rn *Ring) rdivisor(P *Poly, N poly.Poly) (*Poly, error) {
	d := N.Degree()
	if P.Degree() == d {
		return P.Monic(), nil
	}

	P = P.Monic()
	basis, err := rn.homKernel(P, P, P.Degree())
	if err != nil {
		return nil, err
	}

	for i := 0; i < maxSampling; i++ {
		u := rn.randomCombination(basis)
		if u.IsZero() {
			continue
		}
		mp, err := rn.eigenMinPoly(u, P)
		if err != nil {
			return nil, err
		}
		_, fs, err := mp.Factorize(rn.prng)
		if err != nil {
			return nil, err
		}
		if len(fs) == 1 && fs[0].E == 1 {
			// u generates a field inside the endomorphism ring; no
			// zero divisor comes out of it.
			continue
		}

		// g is a proper irreducible factor of the minimal polynomial,
		// so g(u) is a non-zero zero divisor of the eigenring and its
		// right gcd with P is a proper non-trivial divisor.
		v, err := rn.eigenEval(fs[0].P, u, P)
		if err != nil {
			return nil, err
		}
		if v.IsZero() {
			continue
		}
		cand := P.RightGCD(v)
		if cand.Degree() <= 0 || cand.Degree() >= P.Degree() {
			continue
		}
		return rn.rdivisor(cand, N)
	}
	return nil, ErrSamplingBudget
}

// eigenMinPoly returns the minimal polynomial over the prime field of u as an
// element of the eigenring of f, by extending the sequence of reduced powers
// of u until it becomes linearly dependent.
func (rn *Ring) eigenMinPoly(u, f *Poly) (poly.Poly, error) {
	dim := f.Degree() * rn.k.Degree()
	powers := []*Poly{rn.One()}
	acc := rn.One()
	for k := 1; k <= dim+1; k++ {
		var err error
		if acc, err = acc.Mul(u).RightRem(f); err != nil {
			return poly.Poly{}, err
		}
		m := linalg.NewMatrix(rn.fp, dim, len(powers))
		for j, pw := range powers {
			m.SetCol(j, rn.flatten(pw, f.Degree()))
		}
		x, err := m.Solve(rn.flatten(acc, f.Degree()))
		if errors.Is(err, linalg.ErrSingular) {
			powers = append(powers, acc)
			continue
		}
		if err != nil {
			return poly.Poly{}, err
		}
		// u^k = sum x_j u^j, so the minimal polynomial is
		// y^k - sum x_j y^j.
		coeffs := make([]gf.Element, k+1)
		for j := 0; j < k; j++ {
			coeffs[j] = rn.fp.Neg(x[j])
		}
		coeffs[k] = rn.fp.One()
		return poly.NewPoly(rn.fp, coeffs), nil
	}
	return poly.Poly{}, fmt.Errorf("skew: reduced powers never became dependent in dimension %d", dim)
}

// eigenEval evaluates the prime-field polynomial g at u inside the eigenring
// of f, by Horner's rule with reduction modulo f at each step.
func (rn *Ring) eigenEval(g poly.Poly, u, f *Poly) (*Poly, error) {
	acc := rn.Zero()
	for i := g.Degree(); i >= 0; i-- {
		v, err := acc.Mul(u).RightRem(f)
		if err != nil {
			return nil, err
		}
		acc = v.Add(rn.Scalar(rn.k.FromUint64(rn.fp.Uint64(g.Coeff(i)))))
	}
	return acc, nil
}

// homKernel returns an F_p-basis of {u : deg(u) < bound, (f*u) mod g == 0},
// the homomorphisms from R/Rf to R/Rg written as their defining coefficient
// vectors. With f == g and bound == deg(f) this is the eigenring of f.
func (rn *Ring) homKernel(f, g *Poly, bound int) ([]*Poly, error) {
	n := rn.k.Degree()
	rows := g.Degree() * n
	cols := bound * n
	m := linalg.NewMatrix(rn.fp, rows, cols)
	for t := 0; t < bound; t++ {
		for s := 0; s < n; s++ {
			coords := make([]uint64, n)
			coords[s] = 1
			u := make([]gf.Element, t+1)
			for i := 0; i < t; i++ {
				u[i] = rn.k.Zero()
			}
			u[t] = rn.k.NewElement(coords)
			rem, err := f.Mul(rn.attach(u)).RightRem(g)
			if err != nil {
				return nil, err
			}
			m.SetCol(t*n+s, rn.flatten(rem, g.Degree()))
		}
	}
	kernel := m.Nullspace()
	out := make([]*Poly, len(kernel))
	for i, v := range kernel {
		out[i] = rn.unflatten(v, bound)
	}
	return out, nil
}

// randomCombination draws a random F_p-linear combination of the basis, with
// uniform and independent coefficients. The result may be zero.
func (rn *Ring) randomCombination(basis []*Poly) *Poly {
	out := rn.Zero()
	p := rn.k.Characteristic()
	for _, b := range basis {
		c := sampling.RandUint64n(rn.prng, p)
		if c == 0 {
			continue
		}
		out = out.Add(b.MulScalar(rn.k.FromUint64(c)))
	}
	return out
}

// transportDivisor maps a non-zero element u of Hom(R/Rf, R/Rd0) to the
// right divisor of f it determines: the kernel of the homomorphism is
// generated by lclm(u, d0) divided by u on the right, a monic polynomial of
// the same degree as d0.
func transportDivisor(u, d0 *Poly) (*Poly, error) {
	l, err := u.LeftLCM(d0)
	if err != nil {
		return nil, err
	}
	div, err := l.RightQuo(u)
	if err != nil {
		return nil, err
	}
	return div.Monic(), nil
}

// flatten writes the coefficients of p, up to the given bound, as a vector
// of prime-field coordinates.
func (rn *Ring) flatten(p *Poly, bound int) []gf.Element {
	n := rn.k.Degree()
	out := make([]gf.Element, bound*n)
	for t := 0; t < bound; t++ {
		c := p.Coeff(t)
		for s := 0; s < n; s++ {
			out[t*n+s] = rn.fp.FromUint64(c[s])
		}
	}
	return out
}

// unflatten is the inverse of flatten.
func (rn *Ring) unflatten(v []gf.Element, bound int) *Poly {
	n := rn.k.Degree()
	coeffs := make([]gf.Element, bound)
	for t := 0; t < bound; t++ {
		coords := make([]uint64, n)
		for s := 0; s < n; s++ {
			coords[s] = rn.fp.Uint64(v[t*n+s])
		}
		coeffs[t] = rn.k.NewElement(coords)
	}
	return rn.attach(coeffs)
}

// IrreducibleDivisor returns a monic irreducible divisor of p on the given
// side. By default the divisor has the first reduced-norm factor as its
// norm; with DistributionUniform the norm is first drawn with probability
// proportional to the number of divisors carrying it, making the divisor
// uniform among all irreducible divisors of p.
func (p *Poly) IrreducibleDivisor(side Side, dist Distribution) (*Poly, error) {
	if err := dist.validate(); err != nil {
		return nil, err
	}
	if p.IsZero() || p.Degree() == 0 {
		return nil, ErrUndefined
	}
	if side == SideLeft {
		d, err := p.Adjoint().IrreducibleDivisor(SideRight, dist)
		if err != nil {
			return nil, err
		}
		return d.Adjoint(), nil
	}

	factors, err := p.ReducedNormFactor()
	if err != nil {
		return nil, err
	}

	if dist == DistributionDefault {
		return p.IrreducibleDivisorWithNorm(factors[0].N, side, dist)
	}

	counts := make([]*big.Int, len(factors))
	total := new(big.Int)
	for i, cf := range factors {
		c, err := p.countDivisorsWithNorm(cf.N)
		if err != nil {
			return nil, err
		}
		counts[i] = c
		total.Add(total, c)
	}
	pick := sampling.RandInt(p.ring.prng, total)
	for i, c := range counts {
		if pick.Cmp(c) < 0 {
			return p.IrreducibleDivisorWithNorm(factors[i].N, side, dist)
		}
		pick.Sub(pick, c)
	}
	return nil, ErrNoSuchDivisor // unreachable: counts sum to total
}

// CountIrreducibleDivisors returns the number of distinct monic irreducible
// divisors of p on the given side. The count is the same for both sides,
// although the divisor sets themselves generally differ.
func (p *Poly) CountIrreducibleDivisors(side Side) (*big.Int, error) {
	if p.IsZero() {
		return nil, ErrUndefined
	}
	if side == SideLeft {
		return p.Adjoint().CountIrreducibleDivisors(SideRight)
	}
	factors, err := p.ReducedNormFactor()
	if err != nil {
		return nil, err
	}
	total := new(big.Int)
	for _, cf := range factors {
		c, err := p.countDivisorsWithNorm(cf.N)
		if err != nil {
			return nil, err
		}
		total.Add(total, c)
	}
	return total, nil
}

// countDivisorsWithNorm returns the number of distinct monic irreducible
// right divisors of p with reduced norm N, for N a factor of the reduced
// norm: (L^m - 1)/(L - 1) lines in an m-dimensional space over the field of
// size L = q^deg(N), with m the first part of the type. The prime z
// contributes its single divisor X.
func (p *Poly) countDivisorsWithNorm(N poly.Poly) (*big.Int, error) {
	if N.Equal(p.ring.CenterGen()) {
		return big.NewInt(1), nil
	}
	t, err := p.Type(N)
	if err != nil {
		return nil, err
	}
	q := p.ring.cardCenter()
	l := new(big.Int).Exp(q, big.NewInt(int64(N.Degree())), nil)
	num := new(big.Int).Exp(l, big.NewInt(int64(t.First())), nil)
	num.Sub(num, big.NewInt(1))
	den := new(big.Int).Sub(l, big.NewInt(1))
	return num.Quo(num, den), nil
}
