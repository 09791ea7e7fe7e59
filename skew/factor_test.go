package skew_test

import (
	"testing"

	"github.com/Shubhamditya36/sagetrac-mirror/poly"
	"github.com/Shubhamditya36/sagetrac-mirror/skew"
	"github.com/google/go-cmp/cmp"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func TestFactorSplit(t *testing.T) {
	rn := ringGF125(t, "factor.split")
	f := polyXXtX1(rn)

	fac, err := f.Factor()
	require.NoError(t, err)

	degrees := make([]int, len(fac.Factors))
	for i, d := range fac.Factors {
		require.True(t, d.IsMonic())
		degrees[i] = d.Degree()
	}
	require.Empty(t, cmp.Diff([]int{1, 1}, degrees))
	require.True(t, fac.Product().Equal(f), "product of factors differs from the input")

	t.Run("Cached", func(t *testing.T) {
		again, err := f.Factor()
		require.NoError(t, err)
		require.Same(t, fac, again)
	})

	t.Run("SingleFactorization", func(t *testing.T) {
		c, err := f.CountFactorizations()
		require.NoError(t, err)
		require.Equal(t, int64(1), c.Int64())

		c, err = f.CountIrreducibleDivisors(skew.SideRight)
		require.NoError(t, err)
		require.Equal(t, int64(1), c.Int64())
	})
}

func TestFactorIrreducible(t *testing.T) {
	rn := ringGF125(t, "factor.irreducible")
	f := polyXXtXt1(rn)

	fac, err := f.Factor()
	require.NoError(t, err)
	require.Len(t, fac.Factors, 1)
	require.True(t, fac.Factors[0].Equal(f))

	c, err := f.CountFactorizations()
	require.NoError(t, err)
	require.Equal(t, int64(1), c.Int64())
}

func TestFactorValuation(t *testing.T) {
	rn := ringGF125(t, "factor.valuation")
	f := polyXXtX1(rn).Mul(rn.Gen())
	require.Equal(t, 1, f.Valuation())

	fac, err := f.Factor()
	require.NoError(t, err)
	require.Len(t, fac.Factors, 3)
	require.True(t, fac.Factors[2].Equal(rn.Gen()), "the X factor must be rightmost")
	require.True(t, fac.Product().Equal(f))

	t.Run("Counts", func(t *testing.T) {
		// Norm (z+1)^2 * z: three interleavings of the multiset, one
		// flag each.
		c, err := f.CountFactorizations()
		require.NoError(t, err)
		require.Equal(t, int64(3), c.Int64())

		c, err = f.CountIrreducibleDivisors(skew.SideRight)
		require.NoError(t, err)
		require.Equal(t, int64(2), c.Int64())
	})

	t.Run("Enumerate", func(t *testing.T) {
		requireEnumerationMatchesCount(t, f)
	})
}

func TestDivisorsGF4Central(t *testing.T) {
	rn := ringGF4(t, "divisors.gf4")
	f := rn.NewPolyUint64([]uint64{1, 0, 1}) // X^2 + 1 = (X+a)(X+a^-1) for a^3 = 1
	zp1 := poly.NewPolyUint64(rn.CenterField(), []uint64{1, 1})

	t.Run("Count", func(t *testing.T) {
		c, err := f.CountIrreducibleDivisors(skew.SideRight)
		require.NoError(t, err)
		require.Equal(t, int64(3), c.Int64())

		l, err := f.CountIrreducibleDivisors(skew.SideLeft)
		require.NoError(t, err)
		require.Equal(t, 0, c.Cmp(l), "divisor counts must be side-independent")
	})

	t.Run("EnumerateRight", func(t *testing.T) {
		it, err := f.IrreducibleDivisors(skew.SideRight)
		require.NoError(t, err)
		seen := map[string]bool{}
		for d, ok := it.Next(); ok; d, ok = it.Next() {
			require.True(t, d.IsMonic())
			require.Equal(t, 1, d.Degree())
			require.True(t, f.IsRightDivisibleBy(d))
			require.False(t, seen[d.String()], "duplicate divisor %v", d)
			seen[d.String()] = true
		}
		require.NoError(t, it.Err())
		require.Len(t, seen, 3)
	})

	t.Run("EnumerateLeft", func(t *testing.T) {
		it, err := f.IrreducibleDivisors(skew.SideLeft)
		require.NoError(t, err)
		seen := map[string]bool{}
		for d, ok := it.Next(); ok; d, ok = it.Next() {
			require.True(t, f.IsLeftDivisibleBy(d))
			require.False(t, seen[d.String()])
			seen[d.String()] = true
		}
		require.NoError(t, it.Err())
		require.Len(t, seen, 3)
	})

	t.Run("WithNorm", func(t *testing.T) {
		d, err := f.IrreducibleDivisorWithNorm(zp1, skew.SideRight, skew.DistributionDefault)
		require.NoError(t, err)
		require.Equal(t, 1, d.Degree())
		require.True(t, f.IsRightDivisibleBy(d))
		n, err := d.ReducedNorm()
		require.NoError(t, err)
		require.True(t, n.Equal(zp1))
	})

	t.Run("WithNormUniformHitsAll", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 60; i++ {
			d, err := f.IrreducibleDivisorWithNorm(zp1, skew.SideRight, skew.DistributionUniform)
			require.NoError(t, err)
			seen[d.String()] = true
		}
		require.Len(t, seen, 3)
	})

	t.Run("Factorizations", func(t *testing.T) {
		c, err := f.CountFactorizations()
		require.NoError(t, err)
		require.Equal(t, int64(3), c.Int64())
		requireEnumerationMatchesCount(t, f)
	})
}

func TestIrreducibleDivisorErrors(t *testing.T) {
	rn := ringGF125(t, "divisors.errors")
	center := rn.CenterField()

	t.Run("NoSuchNorm", func(t *testing.T) {
		// z+2 does not divide the reduced norm (z+1)^2.
		_, err := polyXXtX1(rn).IrreducibleDivisorWithNorm(
			poly.NewPolyUint64(center, []uint64{2, 1}), skew.SideRight, skew.DistributionDefault)
		require.ErrorIs(t, err, skew.ErrNoSuchDivisor)
	})

	t.Run("RamifiedNonZeroConstant", func(t *testing.T) {
		_, err := polyXXtX1(rn).IrreducibleDivisorWithNorm(
			rn.CenterGen(), skew.SideRight, skew.DistributionDefault)
		require.ErrorIs(t, err, skew.ErrNoSuchDivisor)
	})

	t.Run("ReducibleNorm", func(t *testing.T) {
		_, err := polyXXtX1(rn).IrreducibleDivisorWithNorm(
			poly.NewPolyUint64(center, []uint64{1, 2, 1}), skew.SideRight, skew.DistributionDefault)
		require.ErrorIs(t, err, skew.ErrNotIrreducible)
	})

	t.Run("BadDistribution", func(t *testing.T) {
		_, err := polyXXtX1(rn).IrreducibleDivisor(skew.SideRight, skew.Distribution(42))
		require.ErrorIs(t, err, skew.ErrInvalidArgument)
	})
}

func TestZeroPolynomialErrors(t *testing.T) {
	rn := ringGF125(t, "factor.zero")
	zero := rn.Zero()

	_, err := zero.Factor()
	require.ErrorIs(t, err, skew.ErrUndefined)
	_, err = zero.FactorUniform()
	require.ErrorIs(t, err, skew.ErrUndefined)
	_, err = zero.Factorizations()
	require.ErrorIs(t, err, skew.ErrUndefined)
	_, err = zero.CountFactorizations()
	require.ErrorIs(t, err, skew.ErrUndefined)
	_, err = zero.CountIrreducibleDivisors(skew.SideRight)
	require.ErrorIs(t, err, skew.ErrUndefined)
	_, err = zero.IrreducibleDivisor(skew.SideRight, skew.DistributionDefault)
	require.ErrorIs(t, err, skew.ErrUndefined)
}

func TestFactorRandomRoundTrip(t *testing.T) {
	rn := ringGF125(t, "factor.roundtrip")

	for i := 0; i < 5; i++ {
		f := rn.Rand(4)
		if f.Degree() < 1 {
			continue
		}

		fac, err := f.Factor()
		require.NoError(t, err)
		require.True(t, fac.Product().Equal(f))
		for _, d := range fac.Factors {
			require.True(t, d.IsMonic())
			c, err := d.CountFactorizations()
			require.NoError(t, err)
			require.Equal(t, int64(1), c.Int64(), "factor %v is not irreducible", d)
		}

		uf, err := f.FactorUniform()
		require.NoError(t, err)
		require.True(t, uf.Product().Equal(f))
		require.Len(t, uf.Factors, len(fac.Factors))
	}
}

func TestFactorizationsExhaustive(t *testing.T) {
	rn := ringGF125(t, "factor.exhaustive")

	for i := 0; i < 3; i++ {
		f := rn.RandMonic(3)
		requireEnumerationMatchesCount(t, f)
	}
}

// requireEnumerationMatchesCount checks that Factorizations yields exactly
// CountFactorizations distinct factorizations, each multiplying back to f.
func requireEnumerationMatchesCount(t *testing.T, f *skew.Poly) {
	t.Helper()

	want, err := f.CountFactorizations()
	require.NoError(t, err)

	it, err := f.Factorizations()
	require.NoError(t, err)
	seen := map[string]bool{}
	for fac, ok := it.Next(); ok; fac, ok = it.Next() {
		require.True(t, fac.Product().Equal(f))
		require.False(t, seen[fac.String()], "duplicate factorization %v", fac)
		seen[fac.String()] = true
	}
	require.NoError(t, it.Err())
	require.Equal(t, want.Int64(), int64(len(seen)))
}

func TestFactorUniformDistribution(t *testing.T) {
	rn := ringGF4(t, "factor.uniform.stats")
	f := rn.NewPolyUint64([]uint64{1, 0, 1})

	// X^2+1 has exactly 3 factorizations; with 300 uniform draws each
	// should appear close to 100 times.
	counts := map[string]float64{}
	for i := 0; i < 300; i++ {
		fac, err := f.FactorUniform()
		require.NoError(t, err)
		require.True(t, fac.Product().Equal(f))
		counts[fac.String()]++
	}
	require.Len(t, counts, 3)

	var obs []float64
	for _, c := range counts {
		obs = append(obs, c)
	}
	min, err := stats.Min(obs)
	require.NoError(t, err)
	mean, err := stats.Mean(obs)
	require.NoError(t, err)
	require.InDelta(t, 100, mean, 0.5)
	require.Greater(t, min, 60.0, "a factorization is drawn far less often than uniform allows")
}
