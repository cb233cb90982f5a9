package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/engine"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulateScript(t *testing.T) {
	var out bytes.Buffer
	report, err := simulate(&out, quietLogger(), simOptions{
		Config: config.Default(),
		Seed:   42,
		Moves:  "left,up,right,down",
	})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if report.Moves+report.Skipped != 4 {
		t.Errorf("tried %d directions, want 4", report.Moves+report.Skipped)
	}
	for _, want := range []string{"start (seed 42)", "1: left", "4: down", "final", "status=playing"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Board.Size = 3

	run := func() string {
		var out bytes.Buffer
		if _, err := simulate(&out, quietLogger(), simOptions{Config: cfg, Seed: 9, MaxMoves: 50}); err != nil {
			t.Fatalf("simulate: %v", err)
		}
		return out.String()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed should print the same game:\n%s\nvs\n%s", a, b)
	}
}

func TestSimulateQuiet(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Board.Size = 3

	report, err := simulate(&out, quietLogger(), simOptions{Config: cfg, Seed: 5, Quiet: true})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !report.Status.Terminal() {
		t.Errorf("greedy play without a limit should end, got %v", report.Status)
	}
	if strings.Contains(out.String(), "start") || strings.Contains(out.String(), "1: ") {
		t.Errorf("quiet output should only hold the final board:\n%s", out.String())
	}
	if !strings.HasPrefix(out.String(), "final\n") {
		t.Errorf("quiet output should start with the final board:\n%s", out.String())
	}
}

func TestSimulateBadMoves(t *testing.T) {
	_, err := simulate(io.Discard, quietLogger(), simOptions{
		Config: config.Default(),
		Seed:   1,
		Moves:  "left,sideways",
	})
	if !errors.Is(err, engine.ErrInvalidDirection) {
		t.Errorf("simulate error = %v, want ErrInvalidDirection", err)
	}
}

func TestBoardSizes(t *testing.T) {
	sizes := boardSizes()
	if sizes[0] != 2 || sizes[len(sizes)-1] != config.MaxBoardSize {
		t.Errorf("boardSizes() = %v, want 2..%d", sizes, config.MaxBoardSize)
	}
}
