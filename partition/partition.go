// Package partition implements integer partitions and the combinatorial
// counting functions used by divisor and factorization counting: the
// q-Jordan numbers and multinomial coefficients.
package partition

import (
	"fmt"
	"math/big"

	"github.com/Shubhamditya36/sagetrac-mirror/utils"
)

// Partition is a non-increasing sequence of positive integers.
type Partition []int

// New returns a partition from the given parts, dropping zeros. It returns
// an error if the parts are negative or increase.
func New(parts []int) (Partition, error) {
	var p Partition
	for i, v := range parts {
		if v < 0 {
			return nil, fmt.Errorf("partition: negative part %d", v)
		}
		if v == 0 {
			continue
		}
		if i > 0 && v > parts[i-1] {
			return nil, fmt.Errorf("partition: parts must be non-increasing")
		}
		p = append(p, v)
	}
	return p, nil
}

// Weight returns the sum of the parts.
func (p Partition) Weight() int {
	return utils.Sum([]int(p))
}

// Length returns the number of parts.
func (p Partition) Length() int {
	return len(p)
}

// First returns the largest part, zero for the empty partition.
func (p Partition) First() int {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// Equal reports whether p and q have the same parts.
func (p Partition) Equal(q Partition) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Corners returns the indices i such that removing one box from part i
// leaves a valid partition.
func (p Partition) Corners() (out []int) {
	for i := range p {
		if i == len(p)-1 || p[i] > p[i+1] {
			out = append(out, i)
		}
	}
	return
}

// RemoveBox returns a copy of p with one box removed from part i.
func (p Partition) RemoveBox(i int) Partition {
	out := make(Partition, 0, len(p))
	for j, v := range p {
		if j == i {
			v--
		}
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}

// QJordan returns the q-Jordan number of the partition t evaluated at q:
// the number of complete flags of submodules of a module whose type is t.
// It follows the smallest-part-first corner recursion
//
//	J(t) = sum J(t - box at i) * (q^t_i - q^t_j) / (q - 1)
//
// over the positions i, iterated from the smallest part up, where t_j is the
// previously processed distinct part size (0 initially).
func QJordan(t Partition, q *big.Int) *big.Int {
	if t.Weight() == 0 {
		return big.NewInt(1)
	}
	one := big.NewInt(1)
	qm1 := new(big.Int).Sub(q, one)

	res := new(big.Int)
	tj := 0
	for i := len(t) - 1; i >= 0; i-- {
		ti := t[i]
		if ti > tj {
			// (q^ti - q^tj) / (q - 1)
			num := new(big.Int).Exp(q, big.NewInt(int64(ti)), nil)
			num.Sub(num, new(big.Int).Exp(q, big.NewInt(int64(tj)), nil))
			num.Quo(num, qm1)

			sub := QJordan(t.RemoveBox(i), q)
			res.Add(res, num.Mul(num, sub))
			tj = ti
		}
	}
	return res
}

// Multinomial returns (m_1 + ... + m_k)! / (m_1! ... m_k!).
func Multinomial(ms []int) *big.Int {
	res := big.NewInt(1)
	total := 0
	for _, m := range ms {
		for i := 1; i <= m; i++ {
			total++
			res.Mul(res, big.NewInt(int64(total)))
			res.Quo(res, big.NewInt(int64(i)))
		}
	}
	return res
}
