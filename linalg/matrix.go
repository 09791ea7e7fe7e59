// Package linalg implements dense linear algebra over finite fields: system
// solving, nullspace bases and rank, by Gaussian elimination. It is used for
// subfield retractions, eigenring computations and minimal polynomials of
// module endomorphisms.
package linalg

import (
	"errors"
	"fmt"

	"github.com/Shubhamditya36/sagetrac-mirror/gf"
)

// ErrSingular is returned by Solve when the system has no solution.
var ErrSingular = errors.New("linalg: singular or inconsistent system")

// Matrix is a dense row-major matrix over a finite field.
type Matrix struct {
	F    *gf.Field
	Rows int
	Cols int
	data []gf.Element
}

// NewMatrix returns a zero rows x cols matrix over f.
func NewMatrix(f *gf.Field, rows, cols int) *Matrix {
	data := make([]gf.Element, rows*cols)
	for i := range data {
		data[i] = f.Zero()
	}
	return &Matrix{F: f, Rows: rows, Cols: cols, data: data}
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) gf.Element {
	return m.data[i*m.Cols+j]
}

// Set sets the entry at row i, column j.
func (m *Matrix) Set(i, j int, v gf.Element) {
	m.data[i*m.Cols+j] = v
}

// SetCol sets column j to the vector v.
func (m *Matrix) SetCol(j int, v []gf.Element) {
	if len(v) != m.Rows {
		panic(fmt.Sprintf("linalg: column length %d != %d rows", len(v), m.Rows))
	}
	for i := range v {
		m.Set(i, j, v[i])
	}
}

// CopyNew returns a deep copy of m.
func (m *Matrix) CopyNew() *Matrix {
	c := NewMatrix(m.F, m.Rows, m.Cols)
	for i, v := range m.data {
		c.data[i] = m.F.Copy(v)
	}
	return c
}

// MulVec returns m * v.
func (m *Matrix) MulVec(v []gf.Element) []gf.Element {
	if len(v) != m.Cols {
		panic(fmt.Sprintf("linalg: vector length %d != %d cols", len(v), m.Cols))
	}
	f := m.F
	out := make([]gf.Element, m.Rows)
	for i := range out {
		acc := f.Zero()
		for j := 0; j < m.Cols; j++ {
			acc = f.Add(acc, f.Mul(m.At(i, j), v[j]))
		}
		out[i] = acc
	}
	return out
}

// rowReduce brings m to reduced row echelon form in place and returns the
// pivot column of each pivot row.
func (m *Matrix) rowReduce() (pivots []int) {
	f := m.F
	row := 0
	for col := 0; col < m.Cols && row < m.Rows; col++ {
		// Find a pivot.
		pivot := -1
		for i := row; i < m.Rows; i++ {
			if !f.IsZero(m.At(i, col)) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		if pivot != row {
			for j := 0; j < m.Cols; j++ {
				m.data[row*m.Cols+j], m.data[pivot*m.Cols+j] = m.data[pivot*m.Cols+j], m.data[row*m.Cols+j]
			}
		}
		inv, err := f.Inv(m.At(row, col))
		if err != nil {
			panic("linalg: zero pivot after pivot search")
		}
		for j := col; j < m.Cols; j++ {
			m.Set(row, j, f.Mul(m.At(row, j), inv))
		}
		for i := 0; i < m.Rows; i++ {
			if i == row || f.IsZero(m.At(i, col)) {
				continue
			}
			c := m.At(i, col)
			for j := col; j < m.Cols; j++ {
				m.Set(i, j, f.Sub(m.At(i, j), f.Mul(c, m.At(row, j))))
			}
		}
		pivots = append(pivots, col)
		row++
	}
	return
}

// Rank returns the rank of m.
func (m *Matrix) Rank() int {
	return len(m.CopyNew().rowReduce())
}

// Solve returns a solution x of m * x = b, or ErrSingular when the system is
// inconsistent. When the solution space has positive dimension, the solution
// with zero free coordinates is returned.
func (m *Matrix) Solve(b []gf.Element) ([]gf.Element, error) {
	if len(b) != m.Rows {
		panic(fmt.Sprintf("linalg: vector length %d != %d rows", len(b), m.Rows))
	}
	f := m.F

	// Eliminate on the augmented matrix.
	aug := NewMatrix(f, m.Rows, m.Cols+1)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			aug.Set(i, j, f.Copy(m.At(i, j)))
		}
		aug.Set(i, m.Cols, f.Copy(b[i]))
	}
	pivots := aug.rowReduce()

	x := make([]gf.Element, m.Cols)
	for j := range x {
		x[j] = f.Zero()
	}
	for row, col := range pivots {
		if col == m.Cols {
			return nil, ErrSingular
		}
		x[col] = aug.At(row, m.Cols)
	}
	return x, nil
}

// Nullspace returns a basis of the right kernel of m. The basis is empty
// when the kernel is trivial.
func (m *Matrix) Nullspace() [][]gf.Element {
	f := m.F
	r := m.CopyNew()
	pivots := r.rowReduce()

	isPivot := make([]bool, m.Cols)
	for _, col := range pivots {
		isPivot[col] = true
	}

	var basis [][]gf.Element
	for free := 0; free < m.Cols; free++ {
		if isPivot[free] {
			continue
		}
		v := make([]gf.Element, m.Cols)
		for j := range v {
			v[j] = f.Zero()
		}
		v[free] = f.One()
		for row, col := range pivots {
			v[col] = f.Neg(r.At(row, free))
		}
		basis = append(basis, v)
	}
	return basis
}
