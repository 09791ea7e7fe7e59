/*
Package sagetrac provides a pure Go implementation of dense skew polynomial
rings over finite fields: the twisted arithmetic and its left/right Euclidean
structure, reduced norms over the center, and complete factorization
machinery including canonical and uniformly random factorizations, divisor
search, and enumeration and counting of divisors and factorizations.
*/
package sagetrac
