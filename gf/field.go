// Package gf implements arithmetic in finite fields GF(p^n) of small
// characteristic, together with their Frobenius automorphisms.
//
// A field is realized as F_p[t]/(modulus) for a monic irreducible modulus
// over the prime field. Elements are dense coefficient vectors over F_p of
// length n; the characteristic must satisfy p < 2^32 so that products of
// residues fit in a uint64.
package gf

import (
	"fmt"
	"math/big"

	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
)

// Element is a field element: n coefficients over F_p of its residue
// representative, index 0 holding the constant term. Elements carry no
// reference to their field; all operations go through [Field] methods and
// expect their operands to belong to the receiver field.
type Element []uint64

// Field is a finite field GF(p^n) = F_p[t]/(modulus).
type Field struct {
	p       uint64
	n       int
	modulus []uint64 // monic, length n+1
	card    *big.Int
}

// NewPrimeField returns the prime field F_p.
func NewPrimeField(p uint64) (*Field, error) {
	return NewField(p, []uint64{0, 1})
}

// NewField returns GF(p^n) where n is the degree of the provided monic
// modulus, which must be irreducible over F_p.
func NewField(p uint64, modulus []uint64) (*Field, error) {

	if p < 2 || p >= 1<<32 {
		return nil, fmt.Errorf("characteristic %d out of range [2, 2^32)", p)
	}

	if !new(big.Int).SetUint64(p).ProbablyPrime(32) {
		return nil, fmt.Errorf("characteristic %d is not prime", p)
	}

	n := len(modulus) - 1
	if n < 1 {
		return nil, fmt.Errorf("modulus must have degree at least 1")
	}

	mod := make([]uint64, n+1)
	for i, c := range modulus {
		mod[i] = c % p
	}
	if mod[n] != 1 {
		return nil, fmt.Errorf("modulus must be monic")
	}

	if n > 1 && !fpIsIrreducible(mod, p) {
		return nil, fmt.Errorf("modulus is reducible over F_%d", p)
	}

	card := new(big.Int).Exp(new(big.Int).SetUint64(p), big.NewInt(int64(n)), nil)

	return &Field{p: p, n: n, modulus: mod, card: card}, nil
}

// Characteristic returns p.
func (f *Field) Characteristic() uint64 {
	return f.p
}

// Degree returns n, the degree of the field over its prime field.
func (f *Field) Degree() int {
	return f.n
}

// Cardinality returns p^n.
func (f *Field) Cardinality() *big.Int {
	return new(big.Int).Set(f.card)
}

// Modulus returns a copy of the defining modulus.
func (f *Field) Modulus() []uint64 {
	mod := make([]uint64, len(f.modulus))
	copy(mod, f.modulus)
	return mod
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return make(Element, f.n)
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return f.FromUint64(1)
}

// FromUint64 returns the image of c in the field.
func (f *Field) FromUint64(c uint64) Element {
	el := make(Element, f.n)
	el[0] = c % f.p
	return el
}

// Uint64 returns the constant coordinate of a, which for a prime-field
// element is its integer value, the preimage under FromUint64.
func (f *Field) Uint64(a Element) uint64 {
	return a[0]
}

// NewElement returns the element with the given residue coefficients,
// reduced mod p and truncated or zero-extended to length n.
func (f *Field) NewElement(coeffs []uint64) Element {
	el := make(Element, f.n)
	for i := 0; i < len(coeffs) && i < f.n; i++ {
		el[i] = coeffs[i] % f.p
	}
	return el
}

// Gen returns the residue class of t, a root of the modulus.
func (f *Field) Gen() Element {
	el := make(Element, f.n)
	if f.n > 1 {
		el[1] = 1
	}
	return el
}

// Copy returns a copy of a.
func (f *Field) Copy(a Element) Element {
	b := make(Element, f.n)
	copy(b, a)
	return b
}

// Copy returns a copy of e.
func (e Element) Copy() Element {
	b := make(Element, len(e))
	copy(b, e)
	return b
}

// IsZero reports whether a is the additive identity.
func (f *Field) IsZero(a Element) bool {
	for _, c := range a {
		if c != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether a is the multiplicative identity.
func (f *Field) IsOne(a Element) bool {
	if a[0] != 1 {
		return false
	}
	for _, c := range a[1:] {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b are the same element.
func (f *Field) Equal(a, b Element) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Add returns a + b.
func (f *Field) Add(a, b Element) Element {
	c := make(Element, f.n)
	for i := range c {
		c[i] = (a[i] + b[i]) % f.p
	}
	return c
}

// Sub returns a - b.
func (f *Field) Sub(a, b Element) Element {
	c := make(Element, f.n)
	for i := range c {
		c[i] = (a[i] + f.p - b[i]) % f.p
	}
	return c
}

// Neg returns -a.
func (f *Field) Neg(a Element) Element {
	c := make(Element, f.n)
	for i := range c {
		if a[i] != 0 {
			c[i] = f.p - a[i]
		}
	}
	return c
}

// Mul returns a * b.
func (f *Field) Mul(a, b Element) Element {
	prod := make([]uint64, 2*f.n-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			prod[i+j] = (prod[i+j] + ai*bj) % f.p
		}
	}
	return f.reduce(prod)
}

// MulUint64 returns c * a for a scalar c.
func (f *Field) MulUint64(a Element, c uint64) Element {
	c %= f.p
	out := make(Element, f.n)
	for i := range a {
		out[i] = a[i] * c % f.p
	}
	return out
}

// reduce reduces a coefficient vector of arbitrary length modulo the field
// modulus, returning an Element of length n.
func (f *Field) reduce(v []uint64) Element {
	for i := len(v) - 1; i >= f.n; i-- {
		c := v[i]
		if c == 0 {
			continue
		}
		v[i] = 0
		for j := 0; j < f.n; j++ {
			// v -= c * t^(i-n) * modulus
			m := c * f.modulus[j] % f.p
			v[i-f.n+j] = (v[i-f.n+j] + f.p - m) % f.p
		}
	}
	el := make(Element, f.n)
	copy(el, v[:f.n])
	return el
}

// Inv returns a^-1. It returns an error if a is zero.
func (f *Field) Inv(a Element) (Element, error) {
	if f.IsZero(a) {
		return nil, fmt.Errorf("inverse of zero element")
	}
	inv := fpInvMod(fpTrim(a), f.modulus, f.p)
	return f.NewElement(inv), nil
}

// Div returns a / b. It returns an error if b is zero.
func (f *Field) Div(a, b Element) (Element, error) {
	binv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, binv), nil
}

// Exp returns a^k for k >= 0.
func (f *Field) Exp(a Element, k uint64) Element {
	return f.ExpBig(a, new(big.Int).SetUint64(k))
}

// ExpBig returns a^e for a non-negative big integer exponent.
func (f *Field) ExpBig(a Element, e *big.Int) Element {
	res := f.One()
	base := f.Copy(a)
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			res = f.Mul(res, base)
		}
		base = f.Mul(base, base)
	}
	return res
}

// Frobenius returns a^(p^k). Negative k is taken modulo n.
func (f *Field) Frobenius(a Element, k int) Element {
	k %= f.n
	if k < 0 {
		k += f.n
	}
	res := f.Copy(a)
	for i := 0; i < k; i++ {
		res = f.Exp(res, f.p)
	}
	return res
}

// Rand returns an element drawn uniformly from the field.
func (f *Field) Rand(prng sampling.PRNG) Element {
	el := make(Element, f.n)
	for i := range el {
		el[i] = sampling.RandUint64n(prng, f.p)
	}
	return el
}

// RandNonZero returns an element drawn uniformly from the non-zero elements.
func (f *Field) RandNonZero(prng sampling.PRNG) Element {
	for {
		if el := f.Rand(prng); !f.IsZero(el) {
			return el
		}
	}
}

func (e Element) String() string {
	return fmt.Sprintf("%v", []uint64(e))
}
