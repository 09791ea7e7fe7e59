package linalg_test

import (
	"testing"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
	"github.com/Shubhamditya36/sagetrac-mirror/linalg"
	"github.com/Shubhamditya36/sagetrac-mirror/utils/sampling"
	"github.com/stretchr/testify/require"
)

func testField(t *testing.T) *gf.Field {
	t.Helper()
	f, err := gf.NewPrimeField(5)
	require.NoError(t, err)
	return f
}

func fill(m *linalg.Matrix, f *gf.Field, rows [][]uint64) {
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, f.FromUint64(v))
		}
	}
}

func TestSolve(t *testing.T) {
	f := testField(t)

	t.Run("Unique", func(t *testing.T) {
		m := linalg.NewMatrix(f, 2, 2)
		fill(m, f, [][]uint64{{1, 2}, {3, 4}})
		b := []gf.Element{f.FromUint64(3), f.FromUint64(2)}
		x, err := m.Solve(b)
		require.NoError(t, err)
		got := m.MulVec(x)
		for i := range b {
			require.True(t, f.Equal(b[i], got[i]))
		}
	})

	t.Run("Inconsistent", func(t *testing.T) {
		m := linalg.NewMatrix(f, 2, 2)
		fill(m, f, [][]uint64{{1, 2}, {2, 4}})
		_, err := m.Solve([]gf.Element{f.FromUint64(1), f.FromUint64(3)})
		require.ErrorIs(t, err, linalg.ErrSingular)
	})

	t.Run("Overdetermined", func(t *testing.T) {
		m := linalg.NewMatrix(f, 3, 2)
		fill(m, f, [][]uint64{{1, 0}, {0, 1}, {1, 1}})
		b := []gf.Element{f.FromUint64(2), f.FromUint64(3), f.FromUint64(0)}
		x, err := m.Solve(b)
		require.NoError(t, err)
		require.True(t, f.Equal(x[0], f.FromUint64(2)))
		require.True(t, f.Equal(x[1], f.FromUint64(3)))
	})
}

func TestRank(t *testing.T) {
	f := testField(t)
	m := linalg.NewMatrix(f, 3, 3)
	fill(m, f, [][]uint64{{1, 2, 3}, {0, 1, 1}, {1, 3, 4}})
	// Third row is the sum of the first two.
	require.Equal(t, 2, m.Rank())
}

func TestNullspace(t *testing.T) {
	f := testField(t)
	prng, err := sampling.NewKeyedPRNG([]byte("linalg.nullspace"))
	require.NoError(t, err)

	t.Run("Known", func(t *testing.T) {
		m := linalg.NewMatrix(f, 2, 3)
		fill(m, f, [][]uint64{{1, 0, 1}, {0, 1, 2}})
		basis := m.Nullspace()
		require.Len(t, basis, 1)
		got := m.MulVec(basis[0])
		for _, v := range got {
			require.True(t, f.IsZero(v))
		}
	})

	t.Run("RandomConsistency", func(t *testing.T) {
		m := linalg.NewMatrix(f, 4, 6)
		for i := 0; i < 4; i++ {
			for j := 0; j < 6; j++ {
				m.Set(i, j, f.Rand(prng))
			}
		}
		basis := m.Nullspace()
		require.Equal(t, 6-m.Rank(), len(basis))
		for _, v := range basis {
			for _, e := range m.MulVec(v) {
				require.True(t, f.IsZero(e))
			}
		}
	})

	t.Run("FullRank", func(t *testing.T) {
		m := linalg.NewMatrix(f, 2, 2)
		fill(m, f, [][]uint64{{1, 1}, {0, 1}})
		require.Empty(t, m.Nullspace())
	})
}
