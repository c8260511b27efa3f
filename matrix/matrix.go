// Package matrix implements the dense integer matrix/vector algebra layer
// (L1): row-major matrices with stride views, elementary row/column
// operations, matrix multiplication in its four transposition variants, and
// the integer-preserving null-space/orthogonalization pass the polyhedra
// layer uses to choose a unimodular change of loop basis.
//
// A Dense value is either an owning matrix (constructed with New or
// NewFromRows, holding storage it alone may resize) or a borrowed view
// obtained from Sub/Row/Col/RowsRange/ColsRange (aliasing the owner's backing slice,
// valid only as long as the owner is not resized). Views are never returned
// from a function that also resizes their owner in the same call.
package matrix

import (
	"fmt"
	"strings"

	"github.com/polykit/affine/debug"
)

// Dense is a dense row-major integer matrix with logical shape (rows, cols)
// and a stride >= cols, so that rows may be sub-views of a larger buffer.
// Element (r, c) lives at linear offset off + r*stride + c in data.
type Dense struct {
	data   []int64
	off    int
	rows   int
	cols   int
	stride int
}

// New allocates a fresh owning rows x cols matrix, zero-initialized.
func New(rows, cols int) *Dense {
	return &Dense{
		data:   make([]int64, rows*cols),
		off:    0,
		rows:   rows,
		cols:   cols,
		stride: cols,
	}
}

// NewFromRows builds an owning matrix from literal rows; every row must
// have the same length.
func NewFromRows(rowsData [][]int64) *Dense {
	rows := len(rowsData)
	if rows == 0 {
		return New(0, 0)
	}
	cols := len(rowsData[0])
	m := New(rows, cols)
	for r, row := range rowsData {
		debug.Assert(len(row) == cols, "matrix: ragged row %d: got %d entries, want %d", r, len(row), cols)
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Dense {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Rows returns the number of logical rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of logical columns.
func (m *Dense) Cols() int { return m.cols }

// Stride returns the row stride of the backing buffer.
func (m *Dense) Stride() int { return m.stride }

func (m *Dense) index(r, c int) int {
	debug.Assert(uint(r) < uint(m.rows), "matrix: row %d out of range [0,%d)", r, m.rows)
	debug.Assert(uint(c) < uint(m.cols), "matrix: col %d out of range [0,%d)", c, m.cols)
	return m.off + r*m.stride + c
}

// At returns the element at (r, c).
func (m *Dense) At(r, c int) int64 {
	return m.data[m.index(r, c)]
}

// Set writes v to (r, c).
func (m *Dense) Set(r, c int, v int64) {
	m.data[m.index(r, c)] = v
}

// Add adds delta to element (r, c) in place.
func (m *Dense) Add(r, c int, delta int64) {
	m.data[m.index(r, c)] += delta
}

// Sub returns a borrowed view onto the rectangle [r0,r1) x [c0,c1).
func (m *Dense) Sub(r0, r1, c0, c1 int) *Dense {
	debug.Assert(0 <= r0 && r0 <= r1 && r1 <= m.rows, "matrix: bad row range [%d,%d) of %d", r0, r1, m.rows)
	debug.Assert(0 <= c0 && c0 <= c1 && c1 <= m.cols, "matrix: bad col range [%d,%d) of %d", c0, c1, m.cols)
	return &Dense{
		data:   m.data,
		off:    m.off + r0*m.stride + c0,
		rows:   r1 - r0,
		cols:   c1 - c0,
		stride: m.stride,
	}
}

// Row returns a borrowed 1 x cols view of row i.
func (m *Dense) Row(i int) *Dense {
	return m.Sub(i, i+1, 0, m.cols)
}

// Col returns a borrowed rows x 1 view of column j.
func (m *Dense) Col(j int) *Dense {
	return m.Sub(0, m.rows, j, j+1)
}

// RowsRange returns a borrowed view of rows [r0, r1).
func (m *Dense) RowsRange(r0, r1 int) *Dense {
	return m.Sub(r0, r1, 0, m.cols)
}

// ColsRange returns a borrowed view of columns [c0, c1).
func (m *Dense) ColsRange(c0, c1 int) *Dense {
	return m.Sub(0, m.rows, c0, c1)
}

// Clone returns an owning deep copy of m.
func (m *Dense) Clone() *Dense {
	out := New(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.Set(r, c, m.At(r, c))
		}
	}
	return out
}

// RowSlice returns the entries of row i as a plain slice, which aliases the
// backing buffer when the row is contiguous (stride == cols) and copies
// otherwise.
func (m *Dense) RowSlice(i int) []int64 {
	base := m.off + i*m.stride
	if m.stride == m.cols {
		return m.data[base : base+m.cols]
	}
	out := make([]int64, m.cols)
	copy(out, m.data[base:base+m.cols])
	return out
}

// Equal reports whether m and n have the same shape and entries.
func (m *Dense) Equal(n *Dense) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.At(r, c) != n.At(r, c) {
				return false
			}
		}
	}
	return true
}

func (m *Dense) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		parts := make([]string, m.cols)
		for c := 0; c < m.cols; c++ {
			parts[c] = fmt.Sprintf("%d", m.At(r, c))
		}
		sb.WriteString("[ ")
		sb.WriteString(strings.Join(parts, " "))
		sb.WriteString(" ]\n")
	}
	return sb.String()
}
