package skew

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/partition"
	"github.com/Shubhamditya36/sagetrac-mirror/utils"
	"github.com/zeebo/blake3"
)

// Factorization is an ordered factorization f = Unit * Factors[0] *
// Factors[1] * ... into monic irreducible skew polynomials, leftmost factor
// first.
type Factorization struct {
	rn      *Ring
	Unit    gf.Element
	Factors []*Poly
}

// Product multiplies the unit and the factors back together, in order.
func (f *Factorization) Product() *Poly {
	out := f.rn.Scalar(f.Unit)
	for _, d := range f.Factors {
		out = out.Mul(d)
	}
	return out
}

// Equal reports whether two factorizations have the same unit and the same
// factors in the same order.
func (f *Factorization) Equal(g *Factorization) bool {
	if !f.rn.k.Equal(f.Unit, g.Unit) || len(f.Factors) != len(g.Factors) {
		return false
	}
	for i := range f.Factors {
		if !f.Factors[i].Equal(g.Factors[i]) {
			return false
		}
	}
	return true
}

func (f *Factorization) String() string {
	var sb strings.Builder
	sb.WriteString("(" + f.Unit.String() + ")")
	for _, d := range f.Factors {
		sb.WriteString(" * (" + d.String() + ")")
	}
	return sb.String()
}

// fingerprint hashes the unit and the ordered factor list, for deduplication
// in tests and enumeration checks.
func (f *Factorization) fingerprint() [32]byte {
	h := blake3.New()
	u := fingerprintCoeffs([]gf.Element{f.Unit})
	h.Write(u[:])
	for _, d := range f.Factors {
		fp := d.fingerprint()
		h.Write(fp[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Factor returns the canonical factorization of p into monic irreducible
// factors times its leading coefficient. The factorization is built right to
// left: the valuation is stripped first as copies of X, then for each
// irreducible factor N of the reduced norm, in the deterministic order of
// ReducedNormFactor, one divisor of norm N is peeled per unit of
// multiplicity. The result is cached, so repeated calls return the identical
// factorization; it returns ErrUndefined on the zero polynomial.
func (p *Poly) Factor() (*Factorization, error) {
	if p.IsZero() {
		return nil, ErrUndefined
	}
	if p.fact != nil {
		return p.fact, nil
	}

	rn := p.ring
	unit := p.LeadingCoeff()
	h := p.Monic()

	var factors []*Poly

	// h = g * X^val with g_i = h_(i+val); the X factors sit rightmost and
	// involve no coefficient twisting.
	val := h.Valuation()
	for i := 0; i < val; i++ {
		factors = append(factors, rn.Gen())
	}
	h = h.shiftRight(val)

	nf, err := h.ReducedNormFactor()
	if err != nil {
		return nil, err
	}
	for _, cf := range nf {
		lift, err := rn.Lift(cf.N)
		if err != nil {
			return nil, err
		}
		for j := 0; j < cf.M; j++ {
			g := h.RightGCD(lift)
			d, err := rn.rdivisor(g, cf.N)
			if err != nil {
				return nil, err
			}
			if h, err = h.RightQuo(d); err != nil {
				return nil, err
			}
			factors = append(factors, d)
		}
	}
	if !h.IsOne() {
		return nil, fmt.Errorf("skew: factorization left a non-trivial cofactor of degree %d", h.Degree())
	}

	utils.Reverse(factors)
	p.fact = &Factorization{rn: rn, Unit: unit, Factors: factors}
	return p.fact, nil
}

// CountFactorizations returns the number of distinct ordered factorizations
// of p into monic irreducible factors. The count is the multinomial
// coefficient of the reduced-norm multiplicities (the ways of interleaving
// factors of different norms) times, for each unramified norm N, the number
// of complete flags of the N-primary part, given by QJordan of its type over
// the field of size q^deg(N). It returns ErrUndefined on the zero
// polynomial.
func (p *Poly) CountFactorizations() (*big.Int, error) {
	if p.IsZero() {
		return nil, ErrUndefined
	}
	nf, err := p.ReducedNormFactor()
	if err != nil {
		return nil, err
	}

	mults := make([]int, len(nf))
	for i, cf := range nf {
		mults[i] = cf.M
	}
	total := partition.Multinomial(mults)

	q := p.ring.cardCenter()
	for _, cf := range nf {
		// The ramified prime z has the unique divisor X at every step,
		// so it contributes only through the multinomial.
		if cf.N.Equal(p.ring.CenterGen()) {
			continue
		}
		t, err := p.Type(cf.N)
		if err != nil {
			return nil, err
		}
		l := new(big.Int).Exp(q, big.NewInt(int64(cf.N.Degree())), nil)
		total.Mul(total, partition.QJordan(t, l))
	}
	return total, nil
}
