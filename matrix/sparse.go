package matrix

import (
	"math/bits"

	"github.com/polykit/affine/debug"
)

// maxSparseCols is the column-count ceiling for SmallSparseMatrix: a row's
// column-presence mask must fit in the low 24 bits of a 32-bit word,
// leaving 8 bits for a running offset into the flat non-zero buffer.
const maxSparseCols = 24

// SmallSparseMatrix is a compressed representation for matrices at most
// maxSparseCols columns wide. Each row is a 32-bit word: the low 24 bits
// are a column-presence mask, the high 8 bits are a running offset into a
// flat buffer of non-zero values shared by every row. get(i, j) locates the
// in-row offset with a popcount of the mask's bits below column j; insert
// either overwrites an existing non-zero or splices a new one into the flat
// buffer, shifting every later value (and re-bumping every later row's
// running offset) by one.
//
// This encoding has no off-the-shelf equivalent among the pack's bitset
// libraries (github.com/bits-and-blooms/bitset is a general unbounded
// bitset; this is a fixed 32-bit packed mask+offset word) so it is built
// directly on stdlib math/bits.OnesCount32, which is exactly the popcount
// primitive the layout calls for.
type SmallSparseMatrix struct {
	rows   []uint32 // low 24 bits: column mask; high 8 bits: running offset
	nonzero []int64
	cols   int
}

// NewSmallSparseMatrix allocates an all-zero sparse matrix with the given
// shape. Panics if cols exceeds maxSparseCols.
func NewSmallSparseMatrix(rows, cols int) *SmallSparseMatrix {
	debug.Assert(cols <= maxSparseCols, "matrix: SmallSparseMatrix supports at most %d columns, got %d", maxSparseCols, cols)
	return &SmallSparseMatrix{
		rows: make([]uint32, rows),
		cols: cols,
	}
}

func (s *SmallSparseMatrix) Rows() int { return len(s.rows) }
func (s *SmallSparseMatrix) Cols() int { return s.cols }

func (s *SmallSparseMatrix) mask(i int) uint32   { return s.rows[i] & 0x00FFFFFF }
func (s *SmallSparseMatrix) offset(i int) uint32 { return s.rows[i] >> 24 }

// Get returns the value at (i, j), or 0 if it is not stored.
func (s *SmallSparseMatrix) Get(i, j int) int64 {
	debug.Assert(uint(j) < uint(s.cols), "matrix: SmallSparseMatrix col %d out of range", j)
	m := s.mask(i)
	bit := uint32(1) << uint(j)
	if m&bit == 0 {
		return 0
	}
	below := m & (bit - 1)
	idx := int(s.offset(i)) + bits.OnesCount32(below)
	return s.nonzero[idx]
}

// Insert writes x at (i, j). Storing 0 removes the entry; storing a
// non-zero value either overwrites an existing one in place or splices a
// new slot into the flat buffer, shifting every later row's running offset.
func (s *SmallSparseMatrix) Insert(x int64, i, j int) {
	debug.Assert(uint(j) < uint(s.cols), "matrix: SmallSparseMatrix col %d out of range", j)
	m := s.mask(i)
	bit := uint32(1) << uint(j)
	below := m & (bit - 1)
	localOffset := bits.OnesCount32(below)
	idx := int(s.offset(i)) + localOffset

	switch {
	case m&bit != 0 && x != 0:
		s.nonzero[idx] = x
	case m&bit != 0 && x == 0:
		s.nonzero = append(s.nonzero[:idx], s.nonzero[idx+1:]...)
		s.rows[i] = (m &^ bit) | (s.offset(i) << 24)
		for r := i + 1; r < len(s.rows); r++ {
			s.rows[r] = s.mask(r) | ((s.offset(r) - 1) << 24)
		}
	case m&bit == 0 && x != 0:
		s.nonzero = append(s.nonzero, 0)
		copy(s.nonzero[idx+1:], s.nonzero[idx:])
		s.nonzero[idx] = x
		s.rows[i] = (m | bit) | (s.offset(i) << 24)
		for r := i + 1; r < len(s.rows); r++ {
			s.rows[r] = s.mask(r) | ((s.offset(r) + 1) << 24)
		}
	}
	// m&bit == 0 && x == 0: nothing stored, nothing to do.
}

// Dense materializes s as a dense matrix.
func (s *SmallSparseMatrix) Dense() *Dense {
	out := New(len(s.rows), s.cols)
	for i := range s.rows {
		for j := 0; j < s.cols; j++ {
			if v := s.Get(i, j); v != 0 {
				out.Set(i, j, v)
			}
		}
	}
	return out
}
