package skew

import (
	"fmt"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/poly"
)

// ReducedNorm returns the reduced norm of p as a monic polynomial over the
// center field, in the central variable z = X^r. The zero polynomial has
// reduced norm zero.
//
// The norm is the determinant of the matrix of right multiplication by p on
// the basis 1, X, ..., X^(r-1) of the ring over its center, retracted from K
// to the center field coefficientwise. It is multiplicative, and for f monic
// of degree d it is monic of z-degree d.
func (p *Poly) ReducedNorm() (poly.Poly, error) {
	if p.norm != nil {
		return *p.norm, nil
	}
	rn := p.ring
	if p.IsZero() {
		z := poly.Zero(rn.center)
		p.norm = &z
		return z, nil
	}

	// m[i][j] collects the coefficient of X^j in X^i * p, with each excess
	// power X^(i+k) folded into the center as z^((i+k)/r) on position
	// (i+k) mod r. Entries are polynomials in z with coefficients still
	// in K.
	r := rn.r
	m := make([][]poly.Poly, r)
	for i := range m {
		m[i] = make([]poly.Poly, r)
		for j := range m[i] {
			m[i][j] = poly.Zero(rn.k)
		}
	}
	for i := 0; i < r; i++ {
		ci := p.conjugate(i)
		for k, a := range ci {
			if rn.k.IsZero(a) {
				continue
			}
			col := (i + k) % r
			pow := (i + k) / r
			m[i][col] = m[i][col].Add(poly.NewPoly(rn.k, []gf.Element{a}).Shift(pow))
		}
	}

	det := detPoly(rn.k, m)

	// The determinant has coefficients in the fixed field of sigma; pull
	// them back through the embedding.
	coeffs := make([]gf.Element, det.Degree()+1)
	for i := range coeffs {
		c, err := rn.emb.Retract(det.Coeff(i))
		if err != nil {
			return poly.Poly{}, fmt.Errorf("skew: reduced norm has a coefficient outside the center: %w", err)
		}
		coeffs[i] = c
	}
	norm := poly.NewPoly(rn.center, coeffs).Monic()
	p.norm = &norm
	return norm, nil
}

// ReducedNormFactor returns the factorization of the reduced norm of p into
// monic irreducible polynomials over the center field, in a deterministic
// order. The result is cached; repeated calls return the same factors.
func (p *Poly) ReducedNormFactor() ([]CenterFactor, error) {
	if p.IsZero() {
		return nil, ErrUndefined
	}
	if p.normFact == nil {
		norm, err := p.ReducedNorm()
		if err != nil {
			return nil, err
		}
		_, factors, err := norm.Factorize(p.ring.prng)
		if err != nil {
			return nil, fmt.Errorf("skew: factoring the reduced norm: %w", err)
		}
		out := make([]CenterFactor, len(factors))
		for i, f := range factors {
			out[i] = CenterFactor{N: f.P, M: f.E}
		}
		p.normFact = out
	}
	out := make([]CenterFactor, len(p.normFact))
	copy(out, p.normFact)
	return out, nil
}

// detPoly computes the determinant of a square matrix of polynomials over f
// by cofactor expansion along the first row. The matrices here are r x r for
// the small order r of the twist, so the factorial cost is irrelevant.
func detPoly(f *gf.Field, m [][]poly.Poly) poly.Poly {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	det := poly.Zero(f)
	for j := 0; j < n; j++ {
		if m[0][j].IsZero() {
			continue
		}
		sub := make([][]poly.Poly, n-1)
		for i := 1; i < n; i++ {
			row := make([]poly.Poly, 0, n-1)
			row = append(row, m[i][:j]...)
			row = append(row, m[i][j+1:]...)
			sub[i-1] = row
		}
		term := m[0][j].Mul(detPoly(f, sub))
		if j%2 == 1 {
			term = term.Neg()
		}
		det = det.Add(term)
	}
	return det
}
