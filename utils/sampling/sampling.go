// Package sampling implements pseudo-random sampling of integers, drawing
// all bytes from an injectable PRNG.
package sampling

import (
	"encoding/binary"
	"math/big"
)

// RandUint64 returns a uniform value in [0, 2^64).
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandUint64n returns a uniform value in [0, n) for n > 0, by rejection.
func RandUint64n(prng PRNG, n uint64) uint64 {
	if n == 0 {
		panic("sampling: RandUint64n with n = 0")
	}
	if n&(n-1) == 0 {
		return RandUint64(prng) & (n - 1)
	}
	mask := ^uint64(0)
	bound := mask - mask%n
	for {
		if v := RandUint64(prng); v < bound {
			return v % n
		}
	}
}

// RandFloat64 returns a uniform float in [0, 1).
func RandFloat64(prng PRNG) float64 {
	return float64(RandUint64(prng)>>11) / (1 << 53)
}

// RandInt returns a uniform big integer in [0, max).
func RandInt(prng PRNG, max *big.Int) *big.Int {
	if max.Sign() <= 0 {
		panic("sampling: RandInt with non-positive max")
	}
	b := make([]byte, (max.BitLen()+7)/8)
	excess := uint(len(b)*8 - max.BitLen())
	v := new(big.Int)
	for {
		if _, err := prng.Read(b); err != nil {
			panic(err)
		}
		// Clamp the top byte so that at most half the draws are rejected.
		b[0] >>= excess
		if v.SetBytes(b); v.Cmp(max) < 0 {
			return v
		}
	}
}

// Shuffle performs a uniform Fisher-Yates shuffle of n elements through the
// provided swap function.
func Shuffle(prng PRNG, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(RandUint64n(prng, uint64(i+1)))
		swap(i, j)
	}
}
