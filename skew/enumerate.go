package skew

import (
	"fmt"
	"math/big"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
)

// DivisorIterator lazily enumerates every monic irreducible divisor of a
// polynomial on one side, each exactly once, in an order randomized per
// iterator. It is finite and not restartable.
type DivisorIterator struct {
	adjoint bool
	groups  []*divisorGroup
	gi      int
	err     error
}

// divisorGroup enumerates the divisors sharing one irreducible reduced norm.
// The divisors are the images of the non-zero vectors of a homomorphism
// space under a many-to-one transport, so the group sweeps the vector
// coordinates exhaustively in a randomized affine order and deduplicates
// until the known count is reached.
type divisorGroup struct {
	rn    *Ring
	f     *Poly
	gen   bool // the norm is z: the single divisor X
	d0    *Poly
	hom   []*Poly
	count *big.Int
	found *big.Int

	size, step, cur, left *big.Int
	seen                  map[[32]byte]bool
}

// IrreducibleDivisors returns an iterator over all monic irreducible divisors
// of p on the given side. It returns ErrUndefined on the zero polynomial.
func (p *Poly) IrreducibleDivisors(side Side) (*DivisorIterator, error) {
	if p.IsZero() {
		return nil, ErrUndefined
	}
	it := &DivisorIterator{}
	if side == SideLeft {
		it.adjoint = true
		p = p.Adjoint()
	}

	factors, err := p.ReducedNormFactor()
	if err != nil {
		return nil, err
	}
	rn := p.ring
	f := p.Monic()
	for _, cf := range factors {
		if cf.N.Equal(rn.CenterGen()) {
			it.groups = append(it.groups, &divisorGroup{rn: rn, f: f, gen: true})
			continue
		}
		d0, err := p.divisorRepresentative(cf.N)
		if err != nil {
			return nil, err
		}
		hom, err := rn.homKernel(f, d0, d0.Degree())
		if err != nil {
			return nil, err
		}
		count, err := p.countDivisorsWithNorm(cf.N)
		if err != nil {
			return nil, err
		}
		g := &divisorGroup{
			rn:    rn,
			f:     f,
			d0:    d0,
			hom:   hom,
			count: count,
			found: new(big.Int),
			seen:  make(map[[32]byte]bool),
		}
		g.initSweep()
		it.groups = append(it.groups, g)
	}
	return it, nil
}

// Next returns the next divisor, or false when the enumeration is complete
// or an error occurred. After false, Err distinguishes the two.
func (it *DivisorIterator) Next() (*Poly, bool) {
	if it.err != nil {
		return nil, false
	}
	for it.gi < len(it.groups) {
		d, ok, err := it.groups[it.gi].next()
		if err != nil {
			it.err = err
			return nil, false
		}
		if !ok {
			it.gi++
			continue
		}
		if it.adjoint {
			d = d.Adjoint()
		}
		return d, true
	}
	return nil, false
}

// Err returns the first error encountered by Next, if any.
func (it *DivisorIterator) Err() error { return it.err }

// initSweep sets up a randomized exhaustive walk over the p^k coordinate
// vectors of the homomorphism space: the affine map i -> step*i + offset is a
// permutation of Z/size whenever step is prime to p.
func (g *divisorGroup) initSweep() {
	p := new(big.Int).SetUint64(g.rn.k.Characteristic())
	g.size = new(big.Int).Exp(p, big.NewInt(int64(len(g.hom))), nil)
	for {
		g.step = sampling.RandInt(g.rn.prng, g.size)
		if new(big.Int).Mod(g.step, p).Sign() != 0 {
			break
		}
	}
	g.cur = sampling.RandInt(g.rn.prng, g.size)
	g.left = new(big.Int).Set(g.size)
}

func (g *divisorGroup) next() (*Poly, bool, error) {
	if g.gen {
		if g.f == nil {
			return nil, false, nil
		}
		f := g.f
		g.f = nil
		if f.Valuation() < 1 {
			return nil, false, nil
		}
		return g.rn.Gen(), true, nil
	}

	for g.found.Cmp(g.count) < 0 {
		if g.left.Sign() <= 0 {
			return nil, false, fmt.Errorf("skew: divisor sweep exhausted %s indices before reaching the count %s", g.size, g.count)
		}
		g.left.Sub(g.left, big.NewInt(1))
		idx := new(big.Int).Set(g.cur)
		g.cur.Add(g.cur, g.step)
		g.cur.Mod(g.cur, g.size)

		u := g.combinationAt(idx)
		if u.IsZero() {
			continue
		}
		d, err := transportDivisor(u, g.d0)
		if err != nil {
			return nil, false, err
		}
		key := d.fingerprint()
		if g.seen[key] {
			continue
		}
		g.seen[key] = true
		g.found.Add(g.found, big.NewInt(1))
		return d, true, nil
	}
	return nil, false, nil
}

// combinationAt maps an index to the linear combination of the basis whose
// coefficients are its base-p digits.
func (g *divisorGroup) combinationAt(idx *big.Int) *Poly {
	p := new(big.Int).SetUint64(g.rn.k.Characteristic())
	out := g.rn.Zero()
	digit := new(big.Int)
	for _, b := range g.hom {
		idx.QuoRem(idx, p, digit)
		if digit.Sign() == 0 {
			continue
		}
		out = out.Add(b.MulScalar(g.rn.k.FromUint64(digit.Uint64())))
	}
	return out
}

// FactorizationIterator lazily enumerates every ordered factorization of a
// polynomial into monic irreducible factors (times a unit), each exactly
// once, by depth-first recursion over right divisors. The order is
// randomized per iterator.
type FactorizationIterator struct {
	rn      *Ring
	unit    gf.Element
	monic   *Poly
	stack   []*facFrame
	started bool
	err     error
}

type facFrame struct {
	f  *Poly
	it *DivisorIterator
	d  *Poly
}

// Factorizations returns an iterator over all factorizations of p. It
// returns ErrUndefined on the zero polynomial.
func (p *Poly) Factorizations() (*FactorizationIterator, error) {
	if p.IsZero() {
		return nil, ErrUndefined
	}
	return &FactorizationIterator{
		rn:    p.ring,
		unit:  p.LeadingCoeff(),
		monic: p.Monic(),
	}, nil
}

// Next returns the next factorization, or false when the enumeration is
// complete or an error occurred; Err distinguishes the two.
func (it *FactorizationIterator) Next() (*Factorization, bool) {
	if it.err != nil {
		return nil, false
	}
	if !it.started {
		it.started = true
		if err := it.descend(it.monic); err != nil {
			it.err = err
			return nil, false
		}
		return it.emit(), true
	}
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		d, ok := top.it.Next()
		if !ok {
			if err := top.it.Err(); err != nil {
				it.err = err
				return nil, false
			}
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		top.d = d
		g, err := top.f.RightQuo(d)
		if err != nil {
			it.err = err
			return nil, false
		}
		if err := it.descend(g); err != nil {
			it.err = err
			return nil, false
		}
		return it.emit(), true
	}
	return nil, false
}

// Err returns the first error encountered by Next, if any.
func (it *FactorizationIterator) Err() error { return it.err }

// descend factors f greedily down to the constant 1, pushing one frame per
// peeled right divisor.
func (it *FactorizationIterator) descend(f *Poly) error {
	for f.Degree() > 0 {
		di, err := f.IrreducibleDivisors(SideRight)
		if err != nil {
			return err
		}
		d, ok := di.Next()
		if !ok {
			if err := di.Err(); err != nil {
				return err
			}
			return fmt.Errorf("skew: no irreducible divisor for a polynomial of degree %d", f.Degree())
		}
		it.stack = append(it.stack, &facFrame{f: f, it: di, d: d})
		if f, err = f.RightQuo(d); err != nil {
			return err
		}
	}
	return nil
}

// emit assembles the factorization recorded on the stack, leftmost factor
// first: the first divisor peeled is the rightmost factor.
func (it *FactorizationIterator) emit() *Factorization {
	factors := make([]*Poly, len(it.stack))
	for i, fr := range it.stack {
		factors[len(it.stack)-1-i] = fr.d
	}
	return &Factorization{
		rn:      it.rn,
		Unit:    it.unit,
		Factors: factors,
	}
}
