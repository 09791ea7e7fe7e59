package poly

import (
	"fmt"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/linalg"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
)

// Embedding is a field embedding GF(p^a) -> GF(p^ab), defined by the image
// of the small field's generator, together with its retraction (the partial
// inverse defined on the image subfield).
//
// The image generator is one of the conjugate roots of the small field's
// modulus inside the big field; NewEmbedding draws one of them at random, so
// a fresh, independent embedding can be re-derived at any time by calling
// NewEmbedding again.
type Embedding struct {
	Sub *gf.Field
	Sup *gf.Field

	img   gf.Element     // image of Sub.Gen()
	basis *linalg.Matrix // F_p coordinates of img^j, one column per j
	fp    *gf.Field
}

// NewEmbedding returns an embedding of sub into sup. The fields must have
// the same characteristic and the degree of sub must divide the degree of
// sup.
func NewEmbedding(sub, sup *gf.Field, prng sampling.PRNG) (*Embedding, error) {

	if sub.Characteristic() != sup.Characteristic() {
		return nil, fmt.Errorf("poly: embedding between fields of different characteristic")
	}
	if sup.Degree()%sub.Degree() != 0 {
		return nil, fmt.Errorf("poly: no embedding of GF(%d^%d) into GF(%d^%d)",
			sub.Characteristic(), sub.Degree(), sup.Characteristic(), sup.Degree())
	}

	// Lift the small modulus to the big field and pick one of its roots.
	mod := NewPolyUint64(sup, sub.Modulus())
	roots, err := mod.Roots(prng)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("poly: subfield modulus has no root in the big field")
	}
	img := roots[sampling.RandUint64n(prng, uint64(len(roots)))]

	fp, err := gf.NewPrimeField(sup.Characteristic())
	if err != nil {
		return nil, err
	}

	e := &Embedding{Sub: sub, Sup: sup, img: img, fp: fp}

	e.basis = linalg.NewMatrix(fp, sup.Degree(), sub.Degree())
	pow := sup.One()
	for j := 0; j < sub.Degree(); j++ {
		for i := 0; i < sup.Degree(); i++ {
			e.basis.Set(i, j, fp.FromUint64(pow[i]))
		}
		pow = sup.Mul(pow, img)
	}
	return e, nil
}

// Embed returns the image of a in the big field.
func (e *Embedding) Embed(a gf.Element) gf.Element {
	sup := e.Sup
	res := sup.Zero()
	pow := sup.One()
	for j := 0; j < e.Sub.Degree(); j++ {
		res = sup.Add(res, sup.MulUint64(pow, a[j]))
		pow = sup.Mul(pow, e.img)
	}
	return res
}

// Retract returns the preimage of a under the embedding. It returns an
// error when a does not lie in the embedded subfield.
func (e *Embedding) Retract(a gf.Element) (gf.Element, error) {
	b := make([]gf.Element, e.Sup.Degree())
	for i := range b {
		b[i] = e.fp.FromUint64(a[i])
	}
	x, err := e.basis.Solve(b)
	if err != nil {
		return nil, fmt.Errorf("poly: element outside the embedded subfield: %w", err)
	}
	out := make(gf.Element, e.Sub.Degree())
	for j := range x {
		out[j] = x[j][0]
	}
	return out, nil
}

// InSubfield reports whether a lies in the embedded subfield.
func (e *Embedding) InSubfield(a gf.Element) bool {
	_, err := e.Retract(a)
	return err == nil
}

// Extend constructs a degree-d extension of f as a field over the same
// prime field, together with an embedding of f into it.
func Extend(f *gf.Field, d int, prng sampling.PRNG) (*gf.Field, *Embedding, error) {
	if d < 1 {
		return nil, nil, fmt.Errorf("poly: extension degree must be positive")
	}
	p := f.Characteristic()
	n := f.Degree() * d

	ext, err := RandomField(p, n, prng)
	if err != nil {
		return nil, nil, err
	}
	emb, err := NewEmbedding(f, ext, prng)
	if err != nil {
		return nil, nil, err
	}
	return ext, emb, nil
}

// RandomField returns GF(p^n) defined by a randomly drawn monic irreducible
// modulus of degree n.
func RandomField(p uint64, n int, prng sampling.PRNG) (*gf.Field, error) {
	if n == 1 {
		return gf.NewPrimeField(p)
	}
	for attempt := 0; attempt < maxSplitAttempts; attempt++ {
		mod := make([]uint64, n+1)
		mod[n] = 1
		for i := 0; i < n; i++ {
			mod[i] = sampling.RandUint64n(prng, p)
		}
		if mod[0] == 0 {
			mod[0] = 1
		}
		if f, err := gf.NewField(p, mod); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("poly: no irreducible modulus of degree %d found after %d draws", n, maxSplitAttempts)
}
