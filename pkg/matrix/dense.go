package matrix

import (
	"errors"
	"fmt"

	"github.com/intel/forGoParallel/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrShape is returned by [Mul] when the inner dimensions of the operands
// disagree.
var ErrShape = errors.New("matrix: dimension mismatch")

// Dense is a row-major matrix of float64 values.
//
// The zero value is an empty 0×0 matrix. Dense is not safe for concurrent
// mutation; concurrent reads are fine.
type Dense struct {
	rows, cols int
	data       []float64
}

// New returns a rows×cols matrix with every cell set to zero.
// Either dimension may be zero. New panics on negative dimensions.
func New(rows, cols int) *Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %d×%d", rows, cols))
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// NewFromRows builds a matrix from a slice of equally sized rows.
// It panics if the rows are ragged.
func NewFromRows(rows [][]float64) *Dense {
	if len(rows) == 0 {
		return New(0, 0)
	}
	m := New(len(rows), len(rows[0]))
	for i, r := range rows {
		if len(r) != m.cols {
			panic(fmt.Sprintf("matrix: row %d has %d columns, want %d", i, len(r), m.cols))
		}
		copy(m.data[i*m.cols:], r)
	}
	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// Dims returns the number of rows and columns.
func (m *Dense) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the value at row i, column j.
// It panics if the indices are out of range.
func (m *Dense) At(i, j int) float64 {
	return m.data[m.offset(i, j)]
}

// Set stores v at row i, column j.
// It panics if the indices are out of range.
func (m *Dense) Set(i, j int, v float64) {
	m.data[m.offset(i, j)] = v
}

func (m *Dense) offset(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %d×%d", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// RawRow returns row i as a slice sharing the matrix storage.
func (m *Dense) RawRow(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range for %d rows", i, m.rows))
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	c := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(c.data, m.data)
	return c
}

// Scale returns a copy of m with every cell multiplied by k.
func (m *Dense) Scale(k float64) *Dense {
	c := m.Clone()
	floats.Scale(k, c.data)
	return c
}

// NonZero calls fn for every cell with a positive value, in row-major order.
func (m *Dense) NonZero(fn func(i, j int, v float64)) {
	for i := 0; i < m.rows; i++ {
		for j, v := range m.data[i*m.cols : (i+1)*m.cols] {
			if v > 0 {
				fn(i, j, v)
			}
		}
	}
}

// Transpose returns a new cols×rows matrix holding mᵀ.
func (m *Dense) Transpose() *Dense {
	t := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Mat returns m as a gonum matrix sharing the same storage.
// gonum cannot represent empty axes, so an empty matrix is returned as the
// zero-value mat.Dense, which reports 0×0.
func (m *Dense) Mat() mat.Matrix {
	if m.rows == 0 || m.cols == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(m.rows, m.cols, m.data)
}

// String renders the matrix using gonum's formatter.
func (m *Dense) String() string {
	if m.rows == 0 || m.cols == 0 {
		return fmt.Sprintf("[](%d×%d)", m.rows, m.cols)
	}
	return fmt.Sprintf("%v", mat.Formatted(m.Mat(), mat.Squeeze()))
}

// Mul returns the product a×b as a new a.Rows()×b.Cols() matrix.
//
// Output rows are distributed across goroutines. Each cell (i,j) is the dot
// product of row i of a and column j of b, accumulated in index order, so
// workers write disjoint regions and the join at the end is the only
// synchronization.
func Mul(a, b *Dense) (*Dense, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("%w: %d×%d times %d×%d", ErrShape, a.rows, a.cols, b.rows, b.cols)
	}
	out := New(a.rows, b.cols)
	if a.rows == 0 || b.cols == 0 {
		return out, nil
	}

	// Columns of b become contiguous rows of bt.
	bt := b.Transpose()
	// A batch count of 0 lets the library size batches from NumCPU.
	parallel.Range(0, a.rows, 0, func(low, high int) {
		for i := low; i < high; i++ {
			row := a.data[i*a.cols : (i+1)*a.cols]
			dst := out.data[i*out.cols : (i+1)*out.cols]
			for j := range dst {
				dst[j] = floats.Dot(row, bt.data[j*bt.cols:(j+1)*bt.cols])
			}
		}
	})
	return out, nil
}
