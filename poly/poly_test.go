package poly_test

import (
	"testing"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/poly"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
	"github.com/stretchr/testify/require"
)

func testField(t *testing.T) *gf.Field {
	t.Helper()
	f, err := gf.NewPrimeField(5)
	require.NoError(t, err)
	return f
}

func testPRNG(t *testing.T, seed string) sampling.PRNG {
	t.Helper()
	prng, err := sampling.NewKeyedPRNG([]byte(seed))
	require.NoError(t, err)
	return prng
}

func TestQuoRem(t *testing.T) {
	f := testField(t)
	prng := testPRNG(t, "poly.quorem")

	for i := 0; i < 20; i++ {
		a := poly.Rand(f, 7, prng)
		b := poly.Rand(f, 3, prng)
		if b.IsZero() {
			continue
		}
		quo, rem, err := a.QuoRem(b)
		require.NoError(t, err)
		require.Less(t, rem.Degree(), b.Degree())
		require.True(t, quo.Mul(b).Add(rem).Equal(a))
	}

	t.Run("ByZero", func(t *testing.T) {
		_, _, err := poly.Gen(f).QuoRem(poly.Zero(f))
		require.ErrorIs(t, err, poly.ErrDivisionByZero)
	})

	t.Run("QuoRem0", func(t *testing.T) {
		a := poly.Rand(f, 5, prng)
		b := poly.NewPolyUint64(f, []uint64{1, 2, 1})
		quo, rem := a.QuoRem0(b)
		require.True(t, quo.Mul(b).Add(rem).Equal(a))
		require.Less(t, rem.Degree(), b.Degree())
	})
}

func TestGCD(t *testing.T) {
	f := testField(t)
	prng := testPRNG(t, "poly.gcd")

	for i := 0; i < 20; i++ {
		c := poly.Rand(f, 2, prng)
		if c.IsZero() {
			continue
		}
		a := poly.Rand(f, 3, prng).Mul(c)
		b := poly.Rand(f, 4, prng).Mul(c)
		g := a.GCD(b)
		if a.IsZero() && b.IsZero() {
			continue
		}
		rem, err := a.Rem(g)
		require.NoError(t, err)
		require.True(t, rem.IsZero())
		rem, err = b.Rem(g)
		require.NoError(t, err)
		require.True(t, rem.IsZero())
		require.GreaterOrEqual(t, g.Degree(), c.Degree())
	}
}

func TestIrreducibility(t *testing.T) {
	f := testField(t)

	// z^2+4z+1 has discriminant 12 = 2, a non-residue mod 5.
	require.True(t, poly.NewPolyUint64(f, []uint64{1, 4, 1}).IsIrreducible())
	// z^2+2z+1 = (z+1)^2.
	require.False(t, poly.NewPolyUint64(f, []uint64{1, 2, 1}).IsIrreducible())
	require.True(t, poly.NewPolyUint64(f, []uint64{3, 1}).IsIrreducible())
}

func TestFactorize(t *testing.T) {
	f := testField(t)
	prng := testPRNG(t, "poly.factorize")

	t.Run("KnownSquare", func(t *testing.T) {
		unit, factors, err := poly.NewPolyUint64(f, []uint64{2, 4, 2}).Factorize(prng)
		require.NoError(t, err)
		require.True(t, f.Equal(unit, f.FromUint64(2)))
		require.Len(t, factors, 1)
		require.Equal(t, 2, factors[0].E)
		require.True(t, factors[0].P.Equal(poly.NewPolyUint64(f, []uint64{1, 1})))
	})

	t.Run("RandomRoundTrip", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			p := poly.Rand(f, 6, prng)
			if p.Degree() < 1 {
				continue
			}
			unit, factors, err := p.Factorize(prng)
			require.NoError(t, err)
			acc := poly.NewPoly(f, []gf.Element{unit})
			for _, fc := range factors {
				require.True(t, fc.P.IsIrreducible())
				acc = acc.Mul(fc.P.Pow(fc.E))
			}
			require.True(t, acc.Equal(p))
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		p := poly.NewPolyUint64(f, []uint64{0, 3, 1, 2, 0, 1})
		_, f1, err := p.Factorize(testPRNG(t, "poly.det.a"))
		require.NoError(t, err)
		_, f2, err := p.Factorize(testPRNG(t, "poly.det.b"))
		require.NoError(t, err)
		require.Equal(t, len(f1), len(f2))
		for i := range f1 {
			require.True(t, f1[i].P.Equal(f2[i].P))
			require.Equal(t, f1[i].E, f2[i].E)
		}
	})
}

func TestRoots(t *testing.T) {
	f := testField(t)
	prng := testPRNG(t, "poly.roots")

	// (z-1)(z-2)(z^2+4z+1) has roots 1 and 2.
	p := poly.NewPolyUint64(f, []uint64{4, 1}).
		Mul(poly.NewPolyUint64(f, []uint64{3, 1})).
		Mul(poly.NewPolyUint64(f, []uint64{1, 4, 1}))
	roots, err := p.Roots(prng)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	for _, r := range roots {
		require.True(t, f.IsZero(p.Eval(r)))
	}
}

func TestEmbedding(t *testing.T) {
	prng := testPRNG(t, "poly.embedding")
	sub := testField(t)
	sup, err := gf.NewField(5, []uint64{3, 3, 0, 1})
	require.NoError(t, err)

	emb, err := poly.NewEmbedding(sub, sup, prng)
	require.NoError(t, err)

	for c := uint64(0); c < 5; c++ {
		a := sub.FromUint64(c)
		img := emb.Embed(a)
		require.True(t, emb.InSubfield(img))
		back, err := emb.Retract(img)
		require.NoError(t, err)
		require.True(t, sub.Equal(a, back))
	}

	t.Run("OutsideSubfield", func(t *testing.T) {
		require.False(t, emb.InSubfield(sup.Gen()))
		_, err := emb.Retract(sup.Gen())
		require.Error(t, err)
	})

	t.Run("Homomorphism", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			a, b := sub.Rand(prng), sub.Rand(prng)
			require.True(t, sup.Equal(emb.Embed(sub.Mul(a, b)), sup.Mul(emb.Embed(a), emb.Embed(b))))
			require.True(t, sup.Equal(emb.Embed(sub.Add(a, b)), sup.Add(emb.Embed(a), emb.Embed(b))))
		}
	})
}

func TestExtend(t *testing.T) {
	prng := testPRNG(t, "poly.extend")
	base := testField(t)

	ext, emb, err := poly.Extend(base, 2, prng)
	require.NoError(t, err)
	require.Equal(t, 2, ext.Degree())
	require.Equal(t, int64(25), ext.Cardinality().Int64())

	a := base.FromUint64(3)
	back, err := emb.Retract(emb.Embed(a))
	require.NoError(t, err)
	require.True(t, base.Equal(a, back))
}
