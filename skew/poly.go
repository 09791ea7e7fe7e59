package skew

import (
	"strconv"
	"strings"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/partition"
	"github.com/Shubhamditya36/sagetrac-mirror/poly"
	"github.com/zeebo/blake3"
)

// Poly is a dense skew polynomial over the base field of its ring.
// Coefficients are stored in ascending degree order with the leading
// (non-zero) term last; the zero polynomial has an empty coefficient slice.
//
// Values are immutable: every operation returns a fresh polynomial. This lets
// a Poly accumulate caches (twisted coefficients, reduced norm, types,
// divisors, canonical factorization) that stay valid for its whole lifetime.
type Poly struct {
	ring   *Ring
	coeffs []gf.Element

	// conj[j], once built, holds sigma^j applied coefficientwise, for
	// 0 <= j < r. Division loops hit the same twists repeatedly.
	conj [][]gf.Element

	norm     *poly.Poly
	normFact []CenterFactor
	types    map[[32]byte]partition.Partition
	divisors map[[32]byte]*Poly
	fact     *Factorization
	adjCache *Poly
}

// CenterFactor is an irreducible factor of a reduced norm, over the center
// field of the ring, together with its multiplicity.
type CenterFactor struct {
	N poly.Poly
	M int
}

// Ring returns the skew polynomial ring p belongs to.
func (p *Poly) Ring() *Ring { return p.ring }

// Degree returns the degree of p; the zero polynomial has degree -1.
func (p *Poly) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.coeffs) == 0 }

// IsOne reports whether p is the constant polynomial 1.
func (p *Poly) IsOne() bool {
	return len(p.coeffs) == 1 && p.ring.k.IsOne(p.coeffs[0])
}

// IsMonic reports whether the leading coefficient of p is 1.
func (p *Poly) IsMonic() bool {
	return !p.IsZero() && p.ring.k.IsOne(p.coeffs[len(p.coeffs)-1])
}

// Coeff returns the coefficient of X^i, or zero beyond the degree.
func (p *Poly) Coeff(i int) gf.Element {
	if i < 0 || i >= len(p.coeffs) {
		return p.ring.k.Zero()
	}
	return p.coeffs[i].Copy()
}

// Coeffs returns a copy of the coefficients of p in ascending degree order.
func (p *Poly) Coeffs() []gf.Element {
	out := make([]gf.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Copy()
	}
	return out
}

// LeadingCoeff returns the leading coefficient of p, or zero if p is zero.
func (p *Poly) LeadingCoeff() gf.Element {
	if p.IsZero() {
		return p.ring.k.Zero()
	}
	return p.coeffs[len(p.coeffs)-1].Copy()
}

// Equal reports whether p and q have the same coefficients over the same
// ring.
func (p *Poly) Equal(q *Poly) bool {
	if p.ring != q.ring || len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.ring.k.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	p.sameRing(q)
	k := p.ring.k
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]gf.Element, n)
	for i := range out {
		out[i] = k.Add(p.Coeff(i), q.Coeff(i))
	}
	return p.ring.attach(out)
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	k := p.ring.k
	out := make([]gf.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = k.Neg(c)
	}
	return p.ring.attach(out)
}

// Mul returns the product p*q under the rule X*a = sigma(a)*X, so that
// (p*q)_k = sum over i+j=k of p_i * sigma^i(q_j).
func (p *Poly) Mul(q *Poly) *Poly {
	p.sameRing(q)
	if p.IsZero() || q.IsZero() {
		return p.ring.Zero()
	}
	k := p.ring.k
	out := make([]gf.Element, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = k.Zero()
	}
	for i, a := range p.coeffs {
		if k.IsZero(a) {
			continue
		}
		qi := q.conjugate(i)
		for j, b := range qi {
			if k.IsZero(b) {
				continue
			}
			out[i+j] = k.Add(out[i+j], k.Mul(a, b))
		}
	}
	return p.ring.attach(out)
}

// MulScalar returns c*p, the scalar acting on the left.
func (p *Poly) MulScalar(c gf.Element) *Poly {
	k := p.ring.k
	out := make([]gf.Element, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = k.Mul(c, a)
	}
	return p.ring.attach(out)
}

// Monic returns p divided on the left by its leading coefficient. The right
// divisors of p and of p.Monic() coincide. Panics on the zero polynomial.
func (p *Poly) Monic() *Poly {
	if p.IsZero() {
		panic("skew: Monic of the zero polynomial")
	}
	if p.IsMonic() {
		return p
	}
	inv, err := p.ring.k.Inv(p.coeffs[len(p.coeffs)-1])
	if err != nil {
		panic(err) // leading coefficient is non-zero
	}
	return p.MulScalar(inv)
}

// Valuation returns the largest v such that X^v right-divides p, which is the
// index of the lowest non-zero coefficient. The zero polynomial has
// valuation -1.
func (p *Poly) Valuation() int {
	for i, c := range p.coeffs {
		if !p.ring.k.IsZero(c) {
			return i
		}
	}
	return -1
}

// shiftRight returns p / X^v for v <= Valuation(p), removing v rightmost
// factors of X. No coefficient twisting is involved: if p = h*X^v then
// h_i = p_{i+v}.
func (p *Poly) shiftRight(v int) *Poly {
	if v == 0 {
		return p
	}
	out := make([]gf.Element, len(p.coeffs)-v)
	for i := range out {
		out[i] = p.coeffs[i+v].Copy()
	}
	return p.ring.attach(out)
}

// Adjoint returns the image of p under the adjoint anti-isomorphism into
// K[X;sigma^-1], mapping a_i X^i to sigma^-i(a_i) X^i. It reverses products
// while preserving degrees and reduced norms, so left-sided questions about p
// become right-sided questions about p.Adjoint().
func (p *Poly) Adjoint() *Poly {
	if p.adjCache == nil {
		adj := p.ring.Adjoint()
		out := make([]gf.Element, len(p.coeffs))
		for i, c := range p.coeffs {
			out[i] = p.ring.sigma.ApplyPow(c, -i)
		}
		p.adjCache = adj.attach(out)
		p.adjCache.adjCache = p
	}
	return p.adjCache
}

// String renders p with ascending powers of X.
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, c := range p.coeffs {
		if p.ring.k.IsZero(c) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString("(" + c.String() + ")")
		if i == 1 {
			sb.WriteString("*X")
		} else if i > 1 {
			sb.WriteString("*X^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	return sb.String()
}

// conjugate returns sigma^j applied to the coefficients of p, memoized per
// residue of j modulo the order of sigma.
func (p *Poly) conjugate(j int) []gf.Element {
	j = ((j % p.ring.r) + p.ring.r) % p.ring.r
	if p.conj == nil {
		p.conj = make([][]gf.Element, p.ring.r)
	}
	if p.conj[j] == nil {
		out := make([]gf.Element, len(p.coeffs))
		for i, c := range p.coeffs {
			out[i] = p.ring.sigma.ApplyPow(c, j)
		}
		p.conj[j] = out
	}
	return p.conj[j]
}

// fingerprint hashes the coefficients of p, for use as a cache or dedup key.
func (p *Poly) fingerprint() [32]byte {
	return fingerprintCoeffs(p.coeffs)
}

func (p *Poly) sameRing(q *Poly) {
	if p.ring != q.ring {
		panic("skew: polynomials belong to different rings")
	}
}

func (p *Poly) trim() {
	n := len(p.coeffs)
	for n > 0 && p.ring.k.IsZero(p.coeffs[n-1]) {
		n--
	}
	p.coeffs = p.coeffs[:n]
}

// fingerprintCoeffs hashes a coefficient vector with blake3. The encoding
// prefixes each element with its word count, so distinct vectors cannot
// collide by concatenation.
func fingerprintCoeffs(coeffs []gf.Element) [32]byte {
	h := blake3.New()
	var buf [8]byte
	putUint64 := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	putUint64(uint64(len(coeffs)))
	for _, c := range coeffs {
		putUint64(uint64(len(c)))
		for _, w := range c {
			putUint64(w)
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// fingerprintCenter hashes a central polynomial for cache keying.
func fingerprintCenter(c poly.Poly) [32]byte {
	return fingerprintCoeffs(c.Coeffs)
}
