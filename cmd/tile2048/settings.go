package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
)

// loadConfig reads the configuration and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("target") {
		cfg.Board.Target = flagTarget
	}
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("command line: %w", err)
	}
	return cfg, nil
}

// newLogger creates the program logger writing to w.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tile2048",
		Level:           cfg.LogLevel(),
	})
}

// openLogFile returns a logger for use while the terminal UI owns the screen.
// Without a log file the output is discarded. The returned func closes the file.
func openLogFile(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Log.File == "" {
		return newLogger(io.Discard, cfg), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, cfg), func() { _ = f.Close() }, nil
}

// exitOnError prints err the way every command reports failures.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
