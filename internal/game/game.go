// Package game drives a single puzzle: it owns the live board, applies
// directional input through the engine, spawns tiles and tracks the outcome.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/board"
	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/engine"
)

// ErrGameOver is returned by Move once the game has been won or lost.
var ErrGameOver = errors.New("game: game is over")

// Settings configures a game.
type Settings struct {
	Size            int
	Target          int
	FourProbability float64
	SlideTicks      int // Slide animation length, 0 disables it
	PopTicks        int // Spawn pop animation length, 0 disables it
}

// DefaultSettings returns the classic 4x4 game to 2048.
func DefaultSettings() Settings {
	return SettingsFrom(config.Default())
}

// SettingsFrom extracts game settings from a loaded configuration.
func SettingsFrom(cfg config.Config) Settings {
	return Settings{
		Size:            cfg.Board.Size,
		Target:          cfg.Board.Target,
		FourProbability: cfg.Spawn.FourProbability,
		SlideTicks:      cfg.Animation.SlideTicks,
		PopTicks:        cfg.Animation.PopTicks,
	}
}

// Game implements the sliding-tile puzzle.
type Game struct {
	settings Settings
	logger   *log.Logger
	rng      *rand.Rand
	tick     uint64

	board      board.Board
	status     engine.Status
	moves      int
	lastMerges []board.Position
	lastSpawn  board.Tile

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool

	// Animation state
	animating      bool
	animationPhase AnimationPhase
	animationTicks int
	animations     []TileAnimation
	pendingNewTile *board.Tile
}

// New creates a game. A nil logger discards output.
// Call Reset before playing.
func New(s Settings, logger *log.Logger) (*Game, error) {
	if _, err := board.New(s.Size); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if s.Target < 4 || !board.IsPowerOfTwo(s.Target) {
		return nil, fmt.Errorf("game: target %d is not a power of two >= 4", s.Target)
	}
	if s.FourProbability < 0 || s.FourProbability > 1 {
		return nil, fmt.Errorf("game: four probability %g outside [0, 1]", s.FourProbability)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		settings: s,
		logger:   logger,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tile2048"
}

// Title returns the display name, which is the target tile.
func (g *Game) Title() string {
	return strconv.Itoa(g.settings.Target)
}

// Settings returns the settings the game was created with.
func (g *Game) Settings() Settings {
	return g.settings
}

// Reset initializes/restarts the game: empty board plus two spawned tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.lastMerges = nil
	g.lastSpawn = board.Tile{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.stopAnimation()

	// Size was validated by New
	g.board, _ = board.New(g.settings.Size)
	g.mustSpawn()
	g.lastSpawn = g.mustSpawn()
	g.status = engine.Evaluate(g.board, g.settings.Target)

	g.checkScreenSize()

	g.logger.Debug("new game",
		"size", g.settings.Size,
		"target", g.settings.Target,
		"seed", cfg.Seed)
}

// Resize updates the screen dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// mustSpawn places one tile. A changed move always frees a cell,
// so a full board here is a broken invariant.
func (g *Game) mustSpawn() board.Tile {
	tile, ok := g.board.Spawn(g.rng, g.settings.FourProbability)
	if !ok {
		panic("game: spawn on a full board")
	}
	return tile
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.status.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dir, hasDir := directionFrom(in)

	if g.animating {
		if hasDir {
			g.finishAnimationNow()
		} else {
			g.updateAnimation()
		}
	}

	// Restart is handled by the platform
	if g.status.Terminal() || !hasDir {
		return core.StepResult{State: g.State()}
	}

	res, err := g.Move(dir)
	if err != nil {
		return core.StepResult{State: g.State()}
	}
	return core.StepResult{State: g.State(), Moved: res.Changed}
}

// directionFrom maps an input frame to at most one direction.
func directionFrom(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

// Move applies one direction: slide and merge, then spawn if the board
// changed, then evaluate. A move that changes nothing is not a turn.
func (g *Game) Move(dir engine.Direction) (engine.MoveResult, error) {
	if g.status.Terminal() {
		return engine.MoveResult{Board: g.board.Clone()}, ErrGameOver
	}

	res, err := engine.Apply(g.board, dir)
	if err != nil {
		return res, err
	}
	if !res.Changed {
		return res, nil
	}

	g.board = res.Board.Clone()
	g.moves++
	g.lastMerges = res.Merges

	tile := g.mustSpawn()
	g.lastSpawn = tile
	g.status = engine.Evaluate(g.board, g.settings.Target)

	g.startMoveAnimation(res.Moves, tile)

	g.logger.Debug("move",
		"dir", dir,
		"merges", len(res.Merges),
		"spawn", tile.Value,
		"max", g.board.MaxTile())

	switch g.status {
	case engine.StatusWon:
		g.logger.Info("target reached", "target", g.settings.Target, "moves", g.moves)
	case engine.StatusLost:
		g.logger.Info("no moves left", "max", g.board.MaxTile(), "moves", g.moves)
	}

	return res, nil
}

// Board returns a copy of the live board.
func (g *Game) Board() board.Board {
	return g.board.Clone()
}

// Status returns the current outcome.
func (g *Game) Status() engine.Status {
	return g.status
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		MaxTile:  g.board.MaxTile(),
		Moves:    g.moves,
		Won:      g.status == engine.StatusWon,
		GameOver: g.status.Terminal(),
		Paused:   g.paused || g.tooSmall,
	}
}
