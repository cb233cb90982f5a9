package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded): %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"size too small", func(c *Config) { c.Board.Size = 1 }},
		{"size too large", func(c *Config) { c.Board.Size = MaxBoardSize + 1 }},
		{"target not power of two", func(c *Config) { c.Board.Target = 1000 }},
		{"target too small", func(c *Config) { c.Board.Target = 2 }},
		{"negative probability", func(c *Config) { c.Spawn.FourProbability = -0.1 }},
		{"probability above one", func(c *Config) { c.Spawn.FourProbability = 1.5 }},
		{"negative slide ticks", func(c *Config) { c.Animation.SlideTicks = -1 }},
		{"zero tick rate", func(c *Config) { c.Display.TickRate = 0 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestValidateAcceptsEdges(t *testing.T) {
	cfg := Default()
	cfg.Board.Size = 2
	cfg.Board.Target = 4
	cfg.Spawn.FourProbability = 1
	cfg.Animation.SlideTicks = 0
	cfg.Animation.PopTicks = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  size: 5\n  target: 4096\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}

	if cfg.Board.Size != 5 || cfg.Board.Target != 4096 {
		t.Errorf("board = %+v, want size 5 target 4096", cfg.Board)
	}
	// Fields absent from the file keep their defaults
	if cfg.Spawn.FourProbability != Default().Spawn.FourProbability {
		t.Errorf("four_probability = %g, want default", cfg.Spawn.FourProbability)
	}
	if cfg.Animation != Default().Animation {
		t.Errorf("animation = %+v, want default", cfg.Animation)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Load(size 1) = %v, want ErrInvalidConfiguration", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Board.Size = 6

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tile2048.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(written default): %v", err)
	}
	if cfg != Default() {
		t.Errorf("written default = %+v, want %+v", cfg, Default())
	}

	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault should refuse to overwrite an existing file")
	}
}

func TestLogLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "nonsense"
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() = %v, want info", cfg.LogLevel())
	}
}
