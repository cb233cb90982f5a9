// Package board holds the grid state of the puzzle and the tile spawn rule.
// A Board is a square grid of cells, each either empty (0) or a power of two >= 2.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the canonical board dimension.
const DefaultSize = 4

var (
	// ErrInvalidSize is returned when a board is requested with fewer than 2 rows.
	ErrInvalidSize = errors.New("board: size must be at least 2")

	// ErrInvalidTile is returned when a cell value is neither empty nor a power of two >= 2.
	ErrInvalidTile = errors.New("board: invalid tile value")
)

// Position addresses a single cell.
type Position struct {
	Row int
	Col int
}

// Board is a size x size grid stored row-major.
// The zero value is not usable; construct with New or FromRows.
type Board struct {
	size  int
	cells []int
}

// New returns an all-empty board of size x size.
func New(size int) (Board, error) {
	if size < 2 {
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return Board{size: size, cells: make([]int, size*size)}, nil
}

// FromRows builds a board from explicit rows.
// Rows must form a square of at least 2x2 and hold only 0 or powers of two >= 2.
func FromRows(rows [][]int) (Board, error) {
	b, err := New(len(rows))
	if err != nil {
		return Board{}, err
	}
	for r, row := range rows {
		if len(row) != b.size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), b.size)
		}
		for c, v := range row {
			if v != 0 && (v < 2 || !IsPowerOfTwo(v)) {
				return Board{}, fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidTile, v, r, c)
			}
			b.cells[r*b.size+c] = v
		}
	}
	return b, nil
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Size returns the board dimension.
func (b Board) Size() int {
	return b.size
}

// At returns the value at (row, col). Out-of-range coordinates read as empty.
func (b Board) At(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return 0
	}
	return b.cells[row*b.size+col]
}

// set writes a value without validation. Only spawn uses it.
func (b Board) set(p Position, v int) {
	b.cells[p.Row*b.size+p.Col] = v
}

// Rows returns a copy of the grid as a slice of rows.
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r, rLim := 0, b.size; r < rLim; r++ {
		rows[r] = make([]int, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// Clone returns a deep copy that shares no storage with b.
func (b Board) Clone() Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// Equal reports whether both boards have the same size and identical cells.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (b Board) EmptyCells() []Position {
	var cells []Position
	for i, v := range b.cells {
		if v == 0 {
			cells = append(cells, Position{Row: i / b.size, Col: i % b.size})
		}
	}
	return cells
}

// IsFull returns true if no cell is empty.
func (b Board) IsFull() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// HasValue returns true if any cell equals v.
func (b Board) HasValue(v int) bool {
	for _, c := range b.cells {
		if c == v {
			return true
		}
	}
	return false
}

// MaxTile returns the highest tile value, or 0 for an empty board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for _, v := range b.cells {
		total += v
	}
	return total
}

// TileCount returns the number of non-empty cells.
func (b Board) TileCount() int {
	n := 0
	for _, v := range b.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// String renders the board as right-aligned columns, with '.' for empty cells.
func (b Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for r, rLim := 0, b.size; r < rLim; r++ {
		for c, cLim := 0, b.size; c < cLim; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v := b.At(r, c); v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
