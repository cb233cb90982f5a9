package engine

import "github.com/vovakirdan/tile2048/internal/board"

// DefaultTarget is the tile value that wins the game.
const DefaultTarget = 2048

// Status is the terminal state of a board.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// cells hold the same non-empty value.
func HasPossibleMerge(b board.Board) bool {
	n := b.Size()
	for r, rLim := 0, n; r < rLim; r++ {
		for c, cLim := 0, n; c < cLim; c++ {
			val := b.At(r, c)
			if val == 0 {
				continue
			}
			if c < n-1 && b.At(r, c+1) == val {
				return true
			}
			if r < n-1 && b.At(r+1, c) == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible. This does not depend on
// which direction the player picks: a full board with an adjacent equal pair
// can still move.
func CanMove(b board.Board) bool {
	return !b.IsFull() || HasPossibleMerge(b)
}

// HasWon returns true if the target tile is on the board.
func HasWon(b board.Board, target int) bool {
	return b.HasValue(target)
}

// Evaluate returns the board's status. A win takes priority over having no
// moves left.
func Evaluate(b board.Board, target int) Status {
	if HasWon(b, target) {
		return StatusWon
	}
	if !CanMove(b) {
		return StatusLost
	}
	return StatusPlaying
}
