package config

import (
	_ "embed"

	"github.com/vovakirdan/tile2048/internal/board"
	"github.com/vovakirdan/tile2048/internal/engine"
)

//go:embed defaults/tile2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:   board.DefaultSize,
			Target: engine.DefaultTarget,
		},
		Spawn: SpawnConfig{
			FourProbability: board.DefaultFourProbability,
		},
		Animation: AnimationConfig{
			SlideTicks: 8, // ~133ms at 60fps
			PopTicks:   6, // ~100ms at 60fps
		},
		Display: DisplayConfig{
			TickRate: 60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
