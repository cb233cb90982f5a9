package game

import (
	"github.com/vovakirdan/tile2048/internal/board"
	"github.com/vovakirdan/tile2048/internal/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Size    int
	Target  int
	Moves   int
	Board   board.Board
	MaxTile int // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.status == engine.StatusWon:
		state = StateWin
	case g.status == engine.StatusLost:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Size:    g.settings.Size,
		Target:  g.settings.Target,
		Moves:   g.moves,
		Board:   g.board.Clone(),
		MaxTile: g.board.MaxTile(),
		State:   state,
	}
}
