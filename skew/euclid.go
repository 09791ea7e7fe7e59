package skew

import "github.com/Shubhamditya36/sagetrac-mirror/gf"

// RightQuoRem computes the right Euclidean division p = quo*q + rem with
// deg(rem) < deg(q). It returns ErrDivisionByZero when q is zero.
func (p *Poly) RightQuoRem(q *Poly) (quo, rem *Poly, err error) {
	p.sameRing(q)
	if q.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	da, db := p.Degree(), q.Degree()
	if da < db {
		return p.ring.Zero(), p, nil
	}

	rn := p.ring
	k := rn.k
	inv, ierr := k.Inv(q.coeffs[db])
	if ierr != nil {
		return nil, nil, ierr
	}

	// Twisted inverses of the leading coefficient, indexed by the shift
	// modulo the order of sigma.
	invs := make([]gf.Element, rn.r)
	for j := range invs {
		invs[j] = rn.sigma.ApplyPow(inv, j)
	}

	work := make([]gf.Element, da+1)
	for i := range work {
		work[i] = p.coeffs[i].Copy()
	}
	qc := make([]gf.Element, da-db+1)
	for dr := da; dr >= db; dr-- {
		j := dr - db
		if k.IsZero(work[dr]) {
			qc[j] = k.Zero()
			continue
		}
		c := k.Mul(work[dr], invs[j%rn.r])
		qc[j] = c
		bj := q.conjugate(j)
		for i := 0; i <= db; i++ {
			work[j+i] = k.Sub(work[j+i], k.Mul(c, bj[i]))
		}
	}
	return rn.attach(qc), rn.attach(work[:db]), nil
}

// RightQuo returns the quotient of the right division of p by q.
func (p *Poly) RightQuo(q *Poly) (*Poly, error) {
	quo, _, err := p.RightQuoRem(q)
	return quo, err
}

// RightRem returns the remainder of the right division of p by q.
func (p *Poly) RightRem(q *Poly) (*Poly, error) {
	_, rem, err := p.RightQuoRem(q)
	return rem, err
}

// LeftQuoRem computes the left Euclidean division p = q*quo + rem with
// deg(rem) < deg(q). It returns ErrDivisionByZero when q is zero.
func (p *Poly) LeftQuoRem(q *Poly) (quo, rem *Poly, err error) {
	p.sameRing(q)
	if q.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	da, db := p.Degree(), q.Degree()
	if da < db {
		return p.ring.Zero(), p, nil
	}

	rn := p.ring
	k := rn.k
	inv, ierr := k.Inv(q.coeffs[db])
	if ierr != nil {
		return nil, nil, ierr
	}

	work := make([]gf.Element, da+1)
	for i := range work {
		work[i] = p.coeffs[i].Copy()
	}
	qc := make([]gf.Element, da-db+1)
	for dr := da; dr >= db; dr-- {
		j := dr - db
		if k.IsZero(work[dr]) {
			qc[j] = k.Zero()
			continue
		}
		// q_db * sigma^db(c) = work[dr], so c = sigma^-db(inv * work[dr]).
		c := rn.sigma.ApplyPow(k.Mul(inv, work[dr]), -db)
		qc[j] = c
		for i := 0; i <= db; i++ {
			work[j+i] = k.Sub(work[j+i], k.Mul(q.coeffs[i], rn.sigma.ApplyPow(c, i)))
		}
	}
	return rn.attach(qc), rn.attach(work[:db]), nil
}

// LeftQuo returns the quotient of the left division of p by q.
func (p *Poly) LeftQuo(q *Poly) (*Poly, error) {
	quo, _, err := p.LeftQuoRem(q)
	return quo, err
}

// LeftRem returns the remainder of the left division of p by q.
func (p *Poly) LeftRem(q *Poly) (*Poly, error) {
	_, rem, err := p.LeftQuoRem(q)
	return rem, err
}

// IsRightDivisibleBy reports whether q right-divides p, that is p = g*q for
// some g. Divisibility by zero holds only for the zero polynomial.
func (p *Poly) IsRightDivisibleBy(q *Poly) bool {
	if q.IsZero() {
		return p.IsZero()
	}
	_, rem, _ := p.RightQuoRem(q)
	return rem.IsZero()
}

// IsLeftDivisibleBy reports whether q left-divides p, that is p = q*g for
// some g.
func (p *Poly) IsLeftDivisibleBy(q *Poly) bool {
	if q.IsZero() {
		return p.IsZero()
	}
	_, rem, _ := p.LeftQuoRem(q)
	return rem.IsZero()
}

// RightGCD returns the monic greatest common right divisor of p and q,
// computed by the right Euclidean algorithm. The gcd of two zero polynomials
// is zero.
func (p *Poly) RightGCD(q *Poly) *Poly {
	p.sameRing(q)
	a, b := p, q
	for !b.IsZero() {
		_, rem, err := a.RightQuoRem(b)
		if err != nil {
			panic(err) // b is non-zero
		}
		a, b = b, rem
	}
	if a.IsZero() {
		return a
	}
	return a.Monic()
}

// LeftGCD returns the monic greatest common left divisor of p and q, computed
// by the left Euclidean algorithm.
func (p *Poly) LeftGCD(q *Poly) *Poly {
	p.sameRing(q)
	a, b := p, q
	for !b.IsZero() {
		_, rem, err := a.LeftQuoRem(b)
		if err != nil {
			panic(err)
		}
		a, b = b, rem
	}
	if a.IsZero() {
		return a
	}
	return a.monicRight()
}

// monicRight divides p by its leading coefficient on the right, which
// normalizes the polynomial without disturbing its left divisors.
func (p *Poly) monicRight() *Poly {
	if p.IsZero() {
		panic("skew: Monic of the zero polynomial")
	}
	d := p.Degree()
	if p.ring.k.IsOne(p.coeffs[d]) {
		return p
	}
	inv, err := p.ring.k.Inv(p.coeffs[d])
	if err != nil {
		panic(err)
	}
	// p*c has coefficients p_i*sigma^i(c); c = sigma^-d(inv) makes the
	// leading one equal to 1.
	k := p.ring.k
	out := make([]gf.Element, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = k.Mul(a, p.ring.sigma.ApplyPow(inv, i-d))
	}
	return p.ring.attach(out)
}

// LeftLCM returns the monic least common left multiple of p and q, the monic
// generator of Rp intersected with Rq. Both arguments must be non-zero.
func (p *Poly) LeftLCM(q *Poly) (*Poly, error) {
	p.sameRing(q)
	if p.IsZero() || q.IsZero() {
		return nil, ErrUndefined
	}
	// Run the right Euclidean algorithm on (p, q), tracking the Bezout
	// cofactor s of p: every remainder satisfies r_k = s_k*p + t_k*q. When
	// the remainder vanishes, s*p = -t*q is the least common left
	// multiple.
	r0, r1 := p, q
	s0, s1 := p.ring.One(), p.ring.Zero()
	for !r1.IsZero() {
		quo, rem, err := r0.RightQuoRem(r1)
		if err != nil {
			return nil, err
		}
		r0, r1 = r1, rem
		s0, s1 = s1, s0.Sub(quo.Mul(s1))
	}
	return s1.Mul(p).Monic(), nil
}
