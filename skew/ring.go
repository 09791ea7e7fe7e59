// Package skew implements dense skew polynomials over finite fields, for a
// twist given by a power of the Frobenius endomorphism. It provides the left
// and right Euclidean structure of the ring, the reduced norm, and the
// factorization machinery built on top of it: canonical and uniformly random
// factorizations, irreducible divisor search, and enumeration and counting of
// divisors and factorizations.
package skew

import (
	"fmt"
	"math/big"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/poly"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
)

// Ring is the skew polynomial ring K[X;sigma], where K is a finite field and
// sigma a power of its Frobenius endomorphism. Multiplication follows the
// commutation rule X*a = sigma(a)*X for a in K.
//
// The center of the ring is F[X^r], where r is the order of sigma and F the
// fixed field of sigma. A Ring carries a fixed representation of F together
// with its embedding into K; all central polynomials returned by methods of
// this package (reduced norms in particular) live over that representation.
type Ring struct {
	k     *gf.Field
	sigma *gf.Automorphism
	r     int

	center *gf.Field
	emb    *poly.Embedding
	fp     *gf.Field

	prng sampling.PRNG

	adj *Ring
}

// NewRing builds the skew polynomial ring K[X;sigma]. The automorphism must
// act on k. The PRNG seeds every probabilistic routine of the ring (divisor
// search, uniform factorizations); passing a keyed PRNG makes them
// reproducible.
func NewRing(k *gf.Field, sigma *gf.Automorphism, prng sampling.PRNG) (*Ring, error) {
	if sigma.Field() != k {
		return nil, fmt.Errorf("%w: automorphism does not act on the given field", ErrInvalidArgument)
	}
	if prng == nil {
		var err error
		if prng, err = sampling.NewPRNG(); err != nil {
			return nil, err
		}
	}

	rn := &Ring{k: k, sigma: sigma, r: sigma.Order(), prng: prng}

	// The fixed field of sigma has degree n/r over the prime field. Its
	// representation is drawn once here and never re-derived: every cached
	// central polynomial refers to it.
	p := k.Characteristic()
	fp, err := gf.NewPrimeField(p)
	if err != nil {
		return nil, err
	}
	rn.fp = fp

	n0 := sigma.FixedDegree()
	if n0 == 1 {
		rn.center = fp
	} else {
		rn.center, err = poly.RandomField(p, n0, prng)
		if err != nil {
			return nil, err
		}
	}
	rn.emb, err = poly.NewEmbedding(rn.center, k, prng)
	if err != nil {
		return nil, fmt.Errorf("skew: embedding the center into the base field: %w", err)
	}

	return rn, nil
}

// BaseField returns the coefficient field K.
func (rn *Ring) BaseField() *gf.Field { return rn.k }

// Twist returns the twisting automorphism sigma.
func (rn *Ring) Twist() *gf.Automorphism { return rn.sigma }

// Order returns the order r of the twisting automorphism.
func (rn *Ring) Order() int { return rn.r }

// CenterField returns the fixed field F of sigma, over which the center
// F[X^r] is a plain polynomial ring in the variable z = X^r.
func (rn *Ring) CenterField() *gf.Field { return rn.center }

// CenterEmbedding returns the fixed embedding of the center field into K.
func (rn *Ring) CenterEmbedding() *poly.Embedding { return rn.emb }

// NewPoly returns the skew polynomial with the given coefficients, in
// ascending degree order. The slice is copied.
func (rn *Ring) NewPoly(coeffs []gf.Element) *Poly {
	c := make([]gf.Element, len(coeffs))
	for i, a := range coeffs {
		c[i] = a.Copy()
	}
	return rn.attach(c)
}

// NewPolyUint64 returns the skew polynomial whose coefficients are the images
// of the given integers in K, in ascending degree order.
func (rn *Ring) NewPolyUint64(coeffs []uint64) *Poly {
	c := make([]gf.Element, len(coeffs))
	for i, a := range coeffs {
		c[i] = rn.k.FromUint64(a)
	}
	return rn.attach(c)
}

// Zero returns the zero polynomial.
func (rn *Ring) Zero() *Poly { return rn.attach(nil) }

// One returns the constant polynomial 1.
func (rn *Ring) One() *Poly { return rn.attach([]gf.Element{rn.k.One()}) }

// Gen returns the variable X.
func (rn *Ring) Gen() *Poly {
	return rn.attach([]gf.Element{rn.k.Zero(), rn.k.One()})
}

// Scalar returns the constant polynomial with value a.
func (rn *Ring) Scalar(a gf.Element) *Poly {
	return rn.attach([]gf.Element{a.Copy()})
}

// Rand returns a skew polynomial with uniform coefficients of degree at most
// deg. Leading coefficients may vanish, so the returned degree can be lower.
func (rn *Ring) Rand(deg int) *Poly {
	if deg < 0 {
		return rn.Zero()
	}
	c := make([]gf.Element, deg+1)
	for i := range c {
		c[i] = rn.k.Rand(rn.prng)
	}
	return rn.attach(c)
}

// RandMonic returns a uniform monic skew polynomial of degree exactly deg.
func (rn *Ring) RandMonic(deg int) *Poly {
	if deg < 0 {
		panic("skew: RandMonic with negative degree")
	}
	c := make([]gf.Element, deg+1)
	for i := 0; i < deg; i++ {
		c[i] = rn.k.Rand(rn.prng)
	}
	c[deg] = rn.k.One()
	return rn.attach(c)
}

// Lift maps a central polynomial c(z) to the skew polynomial c(X^r). The
// input must be a polynomial over the center field of this ring.
func (rn *Ring) Lift(c poly.Poly) (*Poly, error) {
	if c.F != rn.center {
		return nil, fmt.Errorf("%w: polynomial is not over the center field", ErrInvalidArgument)
	}
	if c.IsZero() {
		return rn.Zero(), nil
	}
	out := make([]gf.Element, c.Degree()*rn.r+1)
	for i := range out {
		out[i] = rn.k.Zero()
	}
	for i := 0; i <= c.Degree(); i++ {
		out[i*rn.r] = rn.emb.Embed(c.Coeff(i))
	}
	return rn.attach(out), nil
}

// CenterGen returns the central variable z = X^r as a polynomial over the
// center field.
func (rn *Ring) CenterGen() poly.Poly { return poly.Gen(rn.center) }

// Adjoint returns the ring K[X;sigma^-1]. The adjoint map
// a_0 + a_1 X + ... + a_d X^d  |->  a_0 + sigma^-1(a_1) X + ... + sigma^-d(a_d) X^d
// is an anti-isomorphism onto it, exchanging left and right structure while
// preserving reduced norms. The adjoint ring shares the center representation
// of rn, so central polynomials are interchangeable between the two.
func (rn *Ring) Adjoint() *Ring {
	if rn.adj == nil {
		rn.adj = &Ring{
			k:      rn.k,
			sigma:  rn.sigma.Inverse(),
			r:      rn.r,
			center: rn.center,
			emb:    rn.emb,
			fp:     rn.fp,
			prng:   rn.prng,
		}
		rn.adj.adj = rn
	}
	return rn.adj
}

// cardCenter returns the cardinality of the center field as a big integer.
func (rn *Ring) cardCenter() *big.Int {
	return rn.center.Cardinality()
}

func (rn *Ring) attach(coeffs []gf.Element) *Poly {
	p := &Poly{ring: rn, coeffs: coeffs}
	p.trim()
	return p
}
