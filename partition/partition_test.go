package partition_test

import (
	"math/big"
	"testing"

	"github.com/Shubhamditya36/sagetrac-mirror/partition"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := partition.New([]int{3, 2, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 8, p.Weight())
	require.Equal(t, 4, p.Length())
	require.Equal(t, 3, p.First())

	t.Run("Empty", func(t *testing.T) {
		p, err := partition.New(nil)
		require.NoError(t, err)
		require.Equal(t, 0, p.Weight())
		require.Equal(t, 0, p.First())
	})

	t.Run("Increasing", func(t *testing.T) {
		_, err := partition.New([]int{1, 2})
		require.Error(t, err)
	})

	t.Run("ZerosDropped", func(t *testing.T) {
		p, err := partition.New([]int{2, 0})
		require.NoError(t, err)
		require.Equal(t, 1, p.Length())
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := partition.New([]int{2, -1})
		require.Error(t, err)
	})
}

func TestCorners(t *testing.T) {
	p, err := partition.New([]int{3, 2, 2, 1})
	require.NoError(t, err)
	// Removable boxes sit at the last index of each run of equal parts.
	require.Equal(t, []int{0, 2, 3}, p.Corners())

	for _, c := range p.Corners() {
		q := p.RemoveBox(c)
		require.Equal(t, p.Weight()-1, q.Weight())
	}
}

func TestQJordan(t *testing.T) {
	q := big.NewInt(5)

	cases := []struct {
		parts []int
		want  int64
	}{
		// A single Jordan block admits exactly one complete flag.
		{[]int{1, 1}, 1},
		{[]int{1, 1, 1}, 1},
		// Two one-dimensional blocks: q+1 lines to quotient by first.
		{[]int{2}, 6},
		{[]int{2, 1}, 11},
		{[]int{3}, 31 * 6},
	}
	for _, c := range cases {
		p, err := partition.New(c.parts)
		require.NoError(t, err)
		require.Equal(t, c.want, partition.QJordan(p, q).Int64(), "QJordan(%v, 5)", c.parts)
	}

	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, int64(1), partition.QJordan(partition.Partition{}, q).Int64())
	})
}

func TestMultinomial(t *testing.T) {
	require.Equal(t, int64(1), partition.Multinomial(nil).Int64())
	require.Equal(t, int64(3), partition.Multinomial([]int{2, 1}).Int64())
	require.Equal(t, int64(6), partition.Multinomial([]int{1, 1, 1}).Int64())
	require.Equal(t, int64(10), partition.Multinomial([]int{3, 2}).Int64())
}
