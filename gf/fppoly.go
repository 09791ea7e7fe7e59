package gf

import "math/big"

// Dense polynomial helpers over F_p, used by field construction and element
// inversion. Polynomials are little-endian uint64 coefficient slices with
// coefficients already reduced mod p; the zero polynomial is the empty slice.

func fpTrim(a []uint64) []uint64 {
	i := len(a)
	for i > 0 && a[i-1] == 0 {
		i--
	}
	return a[:i]
}

func fpMul(a, b []uint64, p uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	prod := make([]uint64, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			prod[i+j] = (prod[i+j] + ai*bj) % p
		}
	}
	return fpTrim(prod)
}

func fpSub(a, b []uint64, p uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	for i := range out {
		var ai, bi uint64
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = (ai + p - bi) % p
	}
	return fpTrim(out)
}

// fpRem returns a mod b. b must be non-zero.
func fpRem(a, b []uint64, p uint64) []uint64 {
	r := fpTrim(append([]uint64(nil), a...))
	db := len(b) - 1
	inv := fpModInverse(b[db], p)
	for len(r)-1 >= db && len(r) > 0 {
		dr := len(r) - 1
		c := r[dr] * inv % p
		shift := dr - db
		for i := 0; i <= db; i++ {
			m := c * b[i] % p
			r[shift+i] = (r[shift+i] + p - m) % p
		}
		r = fpTrim(r)
	}
	return r
}

func fpGCD(a, b []uint64, p uint64) []uint64 {
	a, b = fpTrim(a), fpTrim(b)
	for len(b) > 0 {
		a, b = b, fpRem(a, b, p)
	}
	return a
}

func fpMulMod(a, b, mod []uint64, p uint64) []uint64 {
	return fpRem(fpMul(a, b, p), mod, p)
}

func fpPowMod(base []uint64, e *big.Int, mod []uint64, p uint64) []uint64 {
	res := []uint64{1}
	b := fpRem(base, mod, p)
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			res = fpMulMod(res, b, mod, p)
		}
		b = fpMulMod(b, b, mod, p)
	}
	return res
}

// fpModInverse returns c^-1 mod p for non-zero c.
func fpModInverse(c, p uint64) uint64 {
	// Fermat
	var res, base uint64 = 1, c % p
	e := p - 2
	for e > 0 {
		if e&1 == 1 {
			res = res * base % p
		}
		base = base * base % p
		e >>= 1
	}
	return res
}

// fpInvMod returns a^-1 mod the monic polynomial mod, via the extended
// Euclidean algorithm. a must be coprime to mod.
func fpInvMod(a, mod []uint64, p uint64) []uint64 {
	r0, r1 := append([]uint64(nil), mod...), fpTrim(append([]uint64(nil), a...))
	var t0, t1 []uint64 = nil, []uint64{1}
	for len(r1) > 0 {
		q, r := fpQuoRem(r0, r1, p)
		r0, r1 = r1, r
		t0, t1 = t1, fpSub(t0, fpMul(q, t1, p), p)
	}
	// r0 is the gcd, a unit; normalize t0 by its inverse.
	inv := fpModInverse(r0[len(r0)-1], p)
	out := make([]uint64, len(t0))
	for i := range t0 {
		out[i] = t0[i] * inv % p
	}
	return out
}

func fpQuoRem(a, b []uint64, p uint64) (q, r []uint64) {
	r = fpTrim(append([]uint64(nil), a...))
	db := len(b) - 1
	if len(r)-1 < db {
		return nil, r
	}
	q = make([]uint64, len(r)-db)
	inv := fpModInverse(b[db], p)
	for len(r) > 0 && len(r)-1 >= db {
		dr := len(r) - 1
		c := r[dr] * inv % p
		shift := dr - db
		q[shift] = c
		for i := 0; i <= db; i++ {
			m := c * b[i] % p
			r[shift+i] = (r[shift+i] + p - m) % p
		}
		r = fpTrim(r)
	}
	return fpTrim(q), r
}

// fpIsIrreducible reports whether the monic polynomial f of degree >= 2 is
// irreducible over F_p, by the Rabin test: x^(p^n) = x mod f and
// gcd(x^(p^(n/l)) - x, f) constant for every prime l dividing n.
func fpIsIrreducible(f []uint64, p uint64) bool {
	n := len(f) - 1
	x := []uint64{0, 1}
	bigP := new(big.Int).SetUint64(p)

	q := new(big.Int).Exp(bigP, big.NewInt(int64(n)), nil)
	if xq := fpPowMod(x, q, f, p); len(fpSub(xq, x, p)) != 0 {
		return false
	}

	for _, l := range primeDivisors(n) {
		q := new(big.Int).Exp(bigP, big.NewInt(int64(n/l)), nil)
		h := fpSub(fpPowMod(x, q, f, p), x, p)
		if g := fpGCD(f, h, p); len(g) > 1 {
			return false
		}
	}
	return true
}

func primeDivisors(n int) (ps []int) {
	for l := 2; l*l <= n; l++ {
		if n%l == 0 {
			ps = append(ps, l)
			for n%l == 0 {
				n /= l
			}
		}
	}
	if n > 1 {
		ps = append(ps, n)
	}
	return
}
