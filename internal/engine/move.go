package engine

import (
	"fmt"

	"github.com/vovakirdan/tile2048/internal/board"
)

// TileMove describes where one source tile ended up after a move.
// Both tiles of a merged pair report Merged and share the same To.
type TileMove struct {
	From   board.Position
	To     board.Position
	Value  int  // Value before any merge
	Merged bool // Whether this tile merged with another
}

// MoveResult is the outcome of applying a direction to a board.
type MoveResult struct {
	Board   board.Board
	Changed bool             // Any cell differs from the input
	Merges  []board.Position // Cells that received a doubled value
	Moves   []TileMove       // One entry per non-empty source tile
}

// lineMove is a TileMove within a single line, indexed along the slide.
type lineMove struct {
	from, to int
	value    int
	merged   bool
}

// slideLine slides and merges one line towards index 0.
// A tile produced by a merge never merges again within the same call.
func slideLine(line []int) (out []int, moves []lineMove, merges []int) {
	type tile struct{ value, from int }

	// Compact, preserving order
	packed := make([]tile, 0, len(line))
	for i, v := range line {
		if v != 0 {
			packed = append(packed, tile{value: v, from: i})
		}
	}

	// Single pass merge; a consumed tile is skipped, never re-examined
	out = make([]int, len(line))
	to := 0
	for i := 0; i < len(packed); i++ {
		cur := packed[i]
		if i+1 < len(packed) && packed[i+1].value == cur.value {
			next := packed[i+1]
			out[to] = cur.value * 2
			moves = append(moves,
				lineMove{from: cur.from, to: to, value: cur.value, merged: true},
				lineMove{from: next.from, to: to, value: next.value, merged: true},
			)
			merges = append(merges, to)
			i++
		} else {
			out[to] = cur.value
			moves = append(moves, lineMove{from: cur.from, to: to, value: cur.value})
		}
		to++
	}

	return out, moves, merges
}

// slideLeft applies slideLine to every row of grid.
// Positions in the returned moves and merges are in grid coordinates.
func slideLeft(grid [][]int) ([][]int, []TileMove, []board.Position) {
	result := make([][]int, len(grid))
	var moves []TileMove
	var merges []board.Position

	for r, row := range grid {
		out, lineMoves, lineMerges := slideLine(row)
		result[r] = out

		for _, m := range lineMoves {
			moves = append(moves, TileMove{
				From:   board.Position{Row: r, Col: m.from},
				To:     board.Position{Row: r, Col: m.to},
				Value:  m.value,
				Merged: m.merged,
			})
		}
		for _, c := range lineMerges {
			merges = append(merges, board.Position{Row: r, Col: c})
		}
	}

	return result, moves, merges
}

// reflect returns the grid with every row reversed.
func reflect(grid [][]int) [][]int {
	result := make([][]int, len(grid))
	for r, row := range grid {
		n := len(row)
		result[r] = make([]int, n)
		for c, cLim := 0, n; c < cLim; c++ {
			result[r][c] = row[n-1-c]
		}
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(grid [][]int) [][]int {
	n := len(grid)
	result := make([][]int, n)
	for r, rLim := 0, n; r < rLim; r++ {
		result[r] = make([]int, n)
		for c, cLim := 0, n; c < cLim; c++ {
			result[r][c] = grid[c][r]
		}
	}
	return result
}

// slideRight reflects, slides left and reflects back.
func slideRight(grid [][]int) ([][]int, []TileMove, []board.Position) {
	n := len(grid)
	out, moves, merges := slideLeft(reflect(grid))
	mirror := func(p board.Position) board.Position {
		return board.Position{Row: p.Row, Col: n - 1 - p.Col}
	}
	return reflect(out), mapMoves(moves, mirror), mapPositions(merges, mirror)
}

// slideUp transposes, slides left and transposes back.
func slideUp(grid [][]int) ([][]int, []TileMove, []board.Position) {
	out, moves, merges := slideLeft(transpose(grid))
	return transpose(out), mapMoves(moves, swap), mapPositions(merges, swap)
}

// slideDown transposes, slides right and transposes back.
func slideDown(grid [][]int) ([][]int, []TileMove, []board.Position) {
	out, moves, merges := slideRight(transpose(grid))
	return transpose(out), mapMoves(moves, swap), mapPositions(merges, swap)
}

func swap(p board.Position) board.Position {
	return board.Position{Row: p.Col, Col: p.Row}
}

func mapMoves(moves []TileMove, f func(board.Position) board.Position) []TileMove {
	for i := range moves {
		moves[i].From = f(moves[i].From)
		moves[i].To = f(moves[i].To)
	}
	return moves
}

func mapPositions(ps []board.Position, f func(board.Position) board.Position) []board.Position {
	for i := range ps {
		ps[i] = f(ps[i])
	}
	return ps
}

// Apply slides the board in the given direction.
// The input board is never modified; no tile is spawned.
func Apply(b board.Board, dir Direction) (MoveResult, error) {
	var slide func([][]int) ([][]int, []TileMove, []board.Position)
	switch dir {
	case Left:
		slide = slideLeft
	case Right:
		slide = slideRight
	case Up:
		slide = slideUp
	case Down:
		slide = slideDown
	default:
		return MoveResult{}, fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}

	grid, moves, merges := slide(b.Rows())

	next, err := board.FromRows(grid)
	if err != nil {
		return MoveResult{}, fmt.Errorf("engine: slide produced an invalid board: %w", err)
	}

	return MoveResult{
		Board:   next,
		Changed: !next.Equal(b),
		Merges:  merges,
		Moves:   moves,
	}, nil
}

// Preview applies every direction to b and returns the results keyed by direction.
func Preview(b board.Board) map[Direction]MoveResult {
	results := make(map[Direction]MoveResult, len(Directions))
	for _, d := range Directions {
		// Directions holds only valid values, so Apply cannot fail here.
		res, err := Apply(b, d)
		if err != nil {
			continue
		}
		results[d] = res
	}
	return results
}

// LegalMoves returns the directions that would change the board, in Directions order.
func LegalMoves(b board.Board) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if res, err := Apply(b, d); err == nil && res.Changed {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
