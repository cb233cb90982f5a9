// Package config provides YAML-based configuration loading and validation
// for the puzzle.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/board"
)

// MaxBoardSize is the largest grid that still fits a regular terminal.
const MaxBoardSize = 8

// ErrInvalidConfiguration is returned by Validate for unusable settings.
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// Config contains all configuration for the game.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
	Display   DisplayConfig   `yaml:"display"`
	Log       LogConfig       `yaml:"log"`
}

// BoardConfig defines the grid and the winning tile.
type BoardConfig struct {
	Size   int `yaml:"size"`
	Target int `yaml:"target"`
}

// SpawnConfig defines the tile spawn rule.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// AnimationConfig defines slide and pop durations in ticks. Zero disables a phase.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// DisplayConfig defines terminal refresh settings.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log destination while the TUI is running
}

// Validate checks every setting and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Size < 2 || c.Board.Size > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.size must be between 2 and %d, got %d", MaxBoardSize, c.Board.Size))
	}
	if c.Board.Target < 4 || !board.IsPowerOfTwo(c.Board.Target) {
		errs = append(errs, fmt.Errorf("board.target must be a power of two >= 4, got %d", c.Board.Target))
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		errs = append(errs, fmt.Errorf("spawn.four_probability must be within [0, 1], got %g", c.Spawn.FourProbability))
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 {
		errs = append(errs, fmt.Errorf("animation ticks must not be negative, got slide=%d pop=%d",
			c.Animation.SlideTicks, c.Animation.PopTicks))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfiguration, errors.Join(errs...))
}

// LogLevel returns the parsed log level, or info when unset or invalid.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
