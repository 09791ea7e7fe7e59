package skew

import (
	"fmt"
	"math/big"

	"github.com/Shubhamditya36/sagetrac-mirror/partition"
	"github.com/Shubhamditya36/sagetrac-mirror/poly"
	"github.com/Shubhamditya36/sagetrac-mirror/utils"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
)

// FactorUniform returns a factorization of p drawn uniformly among all its
// distinct ordered factorizations. It first shuffles the multiset of
// reduced-norm factors, fixing the order in which norms are peeled; the
// number of factorizations refining a given order is the same for every
// order, so a uniform shuffle is exact. Within a norm, the next divisor is
// drawn by acceptance/rejection: a uniform divisor is kept with probability
// proportional to the number of completions of the quotient, measured by
// QJordan of its remaining type.
//
// The result is not cached; every call draws afresh. It returns ErrUndefined
// on the zero polynomial.
func (p *Poly) FactorUniform() (*Factorization, error) {
	if p.IsZero() {
		return nil, ErrUndefined
	}
	rn := p.ring
	unit := p.LeadingCoeff()
	f := p.Monic()

	nf, err := f.ReducedNormFactor()
	if err != nil {
		return nil, err
	}
	var order []poly.Poly
	for _, cf := range nf {
		for j := 0; j < cf.M; j++ {
			order = append(order, cf.N)
		}
	}
	sampling.Shuffle(rn.prng, len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	factors := make([]*Poly, 0, len(order))
	for _, N := range order {
		d, err := f.uniformStep(N)
		if err != nil {
			return nil, err
		}
		if f, err = f.RightQuo(d); err != nil {
			return nil, err
		}
		factors = append(factors, d)
	}
	if !f.IsOne() {
		return nil, fmt.Errorf("skew: uniform factorization left a cofactor of degree %d", f.Degree())
	}

	utils.Reverse(factors)
	return &Factorization{rn: rn, Unit: unit, Factors: factors}, nil
}

// uniformStep draws the next rightmost factor of norm N for the monic
// polynomial f, with probability proportional to the number of complete
// factorizations of the quotient that continue peeling norm N in the chosen
// order.
func (f *Poly) uniformStep(N poly.Poly) (*Poly, error) {
	rn := f.ring
	if N.Equal(rn.CenterGen()) {
		// The ramified prime: X is the only divisor of norm z.
		if f.Valuation() < 1 {
			return nil, ErrNoSuchDivisor
		}
		return rn.Gen(), nil
	}

	t, err := f.Type(N)
	if err != nil {
		return nil, err
	}
	lift, err := rn.Lift(N)
	if err != nil {
		return nil, err
	}
	g := f.RightGCD(lift)
	if g.Degree() <= 0 {
		return nil, ErrNoSuchDivisor
	}
	if t.First() == 1 {
		// A single divisor of norm N remains.
		return g.Monic(), nil
	}

	d0, err := rn.rdivisor(g, N)
	if err != nil {
		return nil, err
	}
	hom, err := rn.homKernel(f, d0, d0.Degree())
	if err != nil {
		return nil, err
	}

	// Quotienting by a divisor of norm N removes one corner box from the
	// type; the acceptance bound is the largest completion count over the
	// reachable types.
	q := rn.cardCenter()
	l := new(big.Int).Exp(q, big.NewInt(int64(N.Degree())), nil)
	mx := new(big.Int)
	for _, c := range t.Corners() {
		j := partition.QJordan(t.RemoveBox(c), l)
		if j.Cmp(mx) > 0 {
			mx.Set(j)
		}
	}

	for i := 0; i < maxSampling; i++ {
		u := rn.randomCombination(hom)
		if u.IsZero() {
			continue
		}
		d, err := transportDivisor(u, d0)
		if err != nil {
			return nil, err
		}
		quo, err := f.RightQuo(d)
		if err != nil {
			return nil, err
		}
		tq, err := quo.Type(N)
		if err != nil {
			return nil, err
		}
		if sampling.RandInt(rn.prng, mx).Cmp(partition.QJordan(tq, l)) < 0 {
			return d, nil
		}
	}
	return nil, ErrSamplingBudget
}
