// Package utils implements generic helper functions.
package utils

import "golang.org/x/exp/constraints"

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Sum returns the sum of the elements of s.
func Sum[T constraints.Integer](s []T) (sum T) {
	for _, v := range s {
		sum += v
	}
	return
}

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
