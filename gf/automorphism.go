package gf

import "fmt"

// Automorphism is a power x -> x^(p^s) of the Frobenius of a field GF(p^n).
// Applications are precomputed as F_p-linear maps, one matrix per power of
// the automorphism up to its order.
type Automorphism struct {
	f     *Field
	s     int
	order int
	mats  [][][]uint64 // mats[i] is the n x n matrix of sigma^i
}

// NewAutomorphism returns the automorphism x -> x^(p^s) of f.
func NewAutomorphism(f *Field, s int) (*Automorphism, error) {
	n := f.n
	s %= n
	if s < 0 {
		s += n
	}
	order := n / gcd(n, s)
	if s == 0 {
		order = 1
	}

	a := &Automorphism{f: f, s: s, order: order}
	a.mats = make([][][]uint64, order)
	for i := range a.mats {
		a.mats[i] = a.matrix(i)
	}
	return a, nil
}

// matrix returns the n x n matrix of sigma^i over F_p, columns indexed by
// the power basis 1, t, ..., t^(n-1).
func (a *Automorphism) matrix(i int) [][]uint64 {
	f := a.f
	n := f.n

	// g = sigma^i(t) = t^(p^(s*i))
	g := f.Frobenius(f.Gen(), a.s*i%n)

	mat := make([][]uint64, n)
	for r := range mat {
		mat[r] = make([]uint64, n)
	}
	col := f.One()
	for j := 0; j < n; j++ {
		for r := 0; r < n; r++ {
			mat[r][j] = col[r]
		}
		col = f.Mul(col, g)
	}
	return mat
}

// Field returns the field the automorphism acts on.
func (a *Automorphism) Field() *Field {
	return a.f
}

// Order returns the multiplicative order of the automorphism.
func (a *Automorphism) Order() int {
	return a.order
}

// FixedDegree returns the degree over F_p of the subfield fixed by the
// automorphism.
func (a *Automorphism) FixedDegree() int {
	return a.f.n / a.order
}

// Apply returns sigma(x).
func (a *Automorphism) Apply(x Element) Element {
	return a.ApplyPow(x, 1)
}

// ApplyPow returns sigma^i(x). The exponent is taken modulo the order, so
// negative values give powers of the inverse automorphism.
func (a *Automorphism) ApplyPow(x Element, i int) Element {
	i %= a.order
	if i < 0 {
		i += a.order
	}
	if i == 0 {
		return a.f.Copy(x)
	}
	mat := a.mats[i]
	f := a.f
	out := make(Element, f.n)
	for r := 0; r < f.n; r++ {
		var acc uint64
		for j := 0; j < f.n; j++ {
			acc = (acc + mat[r][j]*x[j]) % f.p
		}
		out[r] = acc
	}
	return out
}

// Inverse returns the inverse automorphism.
func (a *Automorphism) Inverse() *Automorphism {
	inv, err := NewAutomorphism(a.f, (a.f.n-a.s)%a.f.n)
	if err != nil {
		panic(fmt.Sprintf("gf: inverse automorphism: %v", err))
	}
	return inv
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
