package gg3d

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when two matrices cannot be multiplied
// because the left operand's column count differs from the right operand's
// row count.
var ErrDimensionMismatch = errors.New("gg3d: matrix dimension mismatch")

// Float is the set of scalar types a Matrix can hold.
type Float interface {
	~float32 | ~float64
}

// Matrix is a dense rows×cols matrix stored column-major: element (r, c)
// lives at index c*rows + r. A Matrix exclusively owns its backing slice.
//
// Column-major storage lets AddColumn grow a point list without moving
// existing entries, which is how streamed model files are collected.
type Matrix[T Float] struct {
	rows int
	cols int
	data []T
}

// Mat4 is the 4×4 float64 matrix used by the transform pipeline.
type Mat4 = Matrix[float64]

// NewMatrix creates a zero-initialized rows×cols matrix.
// Negative dimensions are treated as zero.
func NewMatrix[T Float](rows, cols int) *Matrix[T] {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// Identity returns the n×n identity matrix.
func Identity[T Float](n int) *Matrix[T] {
	m := NewMatrix[T](n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// MatrixFromRows builds a matrix from row slices. All rows must have the
// same length.
func MatrixFromRows[T Float](rows ...[]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return NewMatrix[T](0, 0), nil
	}
	cols := len(rows[0])
	m := NewMatrix[T](len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, r, len(row), cols)
		}
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// At returns the element at (row, col). It panics if the index is out of
// range, like a slice access.
func (m *Matrix[T]) At(row, col int) T {
	m.check(row, col)
	return m.data[col*m.rows+row]
}

// Set stores v at (row, col). It panics if the index is out of range.
func (m *Matrix[T]) Set(row, col int, v T) {
	m.check(row, col)
	m.data[col*m.rows+row] = v
}

func (m *Matrix[T]) check(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("gg3d: matrix index (%d, %d) out of range for %dx%d", row, col, m.rows, m.cols))
	}
}

// Column returns a copy of column col.
func (m *Matrix[T]) Column(col int) []T {
	m.check(0, col)
	out := make([]T, m.rows)
	copy(out, m.data[col*m.rows:(col+1)*m.rows])
	return out
}

// AddColumn appends a zero column and returns its index.
func (m *Matrix[T]) AddColumn() int {
	for i := 0; i < m.rows; i++ {
		m.data = append(m.data, 0)
	}
	m.cols++
	return m.cols - 1
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(c.data, m.data)
	return c
}

// Multiply returns the product m · other, where
// C[i][k] = Σ_p m[i][p] * other[p][k].
// It returns ErrDimensionMismatch when m.Cols() != other.Rows().
func (m *Matrix[T]) Multiply(other *Matrix[T]) (*Matrix[T], error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: %dx%d · %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	res := NewMatrix[T](m.rows, other.cols)
	for k := 0; k < other.cols; k++ {
		for p := 0; p < m.cols; p++ {
			b := other.data[k*other.rows+p]
			for i := 0; i < m.rows; i++ {
				res.data[k*res.rows+i] += m.data[p*m.rows+i] * b
			}
		}
	}
	return res, nil
}

// mustMultiply multiplies matrices whose shapes are fixed by construction.
func mustMultiply[T Float](a, b *Matrix[T]) *Matrix[T] {
	res, err := a.Multiply(b)
	if err != nil {
		panic(err)
	}
	return res
}

// Compose multiplies the matrices left to right, so the rightmost matrix is
// the first one applied to a column vector.
func Compose[T Float](ms ...*Matrix[T]) (*Matrix[T], error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%w: nothing to compose", ErrDimensionMismatch)
	}
	acc := ms[0].Clone()
	for _, m := range ms[1:] {
		next, err := acc.Multiply(m)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// String formats the matrix row by row.
func (m *Matrix[T]) String() string {
	s := fmt.Sprintf("Matrix(%dx%d)[", m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			s += "; "
		}
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				s += " "
			}
			s += fmt.Sprintf("%g", m.At(r, c))
		}
	}
	return s + "]"
}
