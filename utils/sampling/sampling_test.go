package sampling_test

import (
	"math/big"
	"testing"

	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
	"github.com/stretchr/testify/require"
)

func TestKeyedPRNG(t *testing.T) {
	a, err := sampling.NewKeyedPRNG([]byte("seed"))
	require.NoError(t, err)
	b, err := sampling.NewKeyedPRNG([]byte("seed"))
	require.NoError(t, err)

	bufA, bufB := make([]byte, 64), make([]byte, 64)
	_, err = a.Read(bufA)
	require.NoError(t, err)
	_, err = b.Read(bufB)
	require.NoError(t, err)
	require.Equal(t, bufA, bufB, "same key must give the same stream")

	t.Run("Reset", func(t *testing.T) {
		a.Reset()
		buf := make([]byte, 64)
		_, err := a.Read(buf)
		require.NoError(t, err)
		require.Equal(t, bufA, buf)
	})

	t.Run("DifferentKeys", func(t *testing.T) {
		c, err := sampling.NewKeyedPRNG([]byte("other"))
		require.NoError(t, err)
		buf := make([]byte, 64)
		_, err = c.Read(buf)
		require.NoError(t, err)
		require.NotEqual(t, bufA, buf)
	})
}

func TestRandUint64n(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte("randuint64n"))
	require.NoError(t, err)

	for _, n := range []uint64{1, 2, 5, 16, 1000} {
		seen := map[uint64]bool{}
		for i := 0; i < 200; i++ {
			v := sampling.RandUint64n(prng, n)
			require.Less(t, v, n)
			seen[v] = true
		}
		if n <= 16 {
			require.Len(t, seen, int(n), "all residues below %d should appear", n)
		}
	}

	t.Run("LargeBound", func(t *testing.T) {
		// Exercises the rejection path with a bound whose complement mask
		// spans all 64 bits.
		n := uint64(1)<<63 + 3
		for i := 0; i < 50; i++ {
			require.Less(t, sampling.RandUint64n(prng, n), n)
		}
	})
}

func TestRandFloat64(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte("randfloat"))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v := sampling.RandFloat64(prng)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRandInt(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte("randint"))
	require.NoError(t, err)

	for _, max := range []int64{1, 2, 7, 256, 1 << 40} {
		m := big.NewInt(max)
		for i := 0; i < 50; i++ {
			v := sampling.RandInt(prng, m)
			require.True(t, v.Sign() >= 0)
			require.True(t, v.Cmp(m) < 0)
		}
	}
}

func TestShuffle(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte("shuffle"))
	require.NoError(t, err)

	vals := make([]int, 20)
	for i := range vals {
		vals[i] = i
	}
	sampling.Shuffle(prng, len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})

	seen := map[int]bool{}
	for _, v := range vals {
		require.False(t, seen[v])
		seen[v] = true
	}
	require.Len(t, seen, 20)
}
