package utils_test

import (
	"testing"

	"github.com/Shubhamditya36/sagetrac-mirror/utils"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 2, utils.Min(2, 7))
	require.Equal(t, 7, utils.Max(2, 7))
	require.Equal(t, -1.5, utils.Min(-1.5, 0.0))
}

func TestSum(t *testing.T) {
	require.Equal(t, 10, utils.Sum([]int{1, 2, 3, 4}))
	require.Equal(t, uint64(0), utils.Sum[uint64](nil))
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3}
	utils.Reverse(s)
	require.Equal(t, []int{3, 2, 1}, s)
}
