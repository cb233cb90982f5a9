package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/engine"
	"github.com/vovakirdan/tile2048/internal/game"
)

var (
	flagMoves    string
	flagMaxMoves int
	flagQuiet    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play without a terminal UI",
	Long: `Play a game headless and print the boards to stdout.

With --moves the given directions are replayed in order; otherwise a greedy
policy plays (most merges first, then most empty cells) until the game ends.
Direction tokens: left/a/h, right/d/l, up/w/k, down/s/j.

Examples:
  tile2048 sim --seed 42
  tile2048 sim --moves left,up,right,down --seed 1
  tile2048 sim --size 3 --quiet`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addPlayFlags(simCmd)
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma or space separated directions to replay")
	simCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 10000, "Stop after this many directions (0 = no limit)")
	simCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print only the final board and status")
}

// simOptions configures one headless run.
type simOptions struct {
	Config   config.Config
	Seed     int64
	Moves    string
	MaxMoves int
	Quiet    bool
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	exitOnError(err)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := newLogger(os.Stderr, cfg)
	report, err := simulate(cmd.OutOrStdout(), logger, simOptions{
		Config:   cfg,
		Seed:     seed,
		Moves:    flagMoves,
		MaxMoves: flagMaxMoves,
		Quiet:    flagQuiet,
	})
	exitOnError(err)

	logger.Debug("simulation finished", "seed", seed, "status", report.Status)
}

// simulate runs one headless game, printing boards to w.
func simulate(w io.Writer, logger *log.Logger, opts simOptions) (game.Report, error) {
	settings := game.SettingsFrom(opts.Config)
	settings.SlideTicks = 0
	settings.PopTicks = 0

	g, err := game.New(settings, logger)
	if err != nil {
		return game.Report{}, err
	}
	rc := core.DefaultConfig()
	rc.TickRate = opts.Config.Display.TickRate
	rc.Seed = opts.Seed
	g.Reset(rc)

	var policy game.Policy = game.GreedyPolicy{}
	if opts.Moves != "" {
		script, err := game.ParseScript(opts.Moves)
		if err != nil {
			return game.Report{}, err
		}
		policy = script
	}

	if !opts.Quiet {
		fmt.Fprintf(w, "start (seed %d)\n%s\n", opts.Seed, g.Board())
	}

	n := 0
	report, err := game.Play(g, policy, opts.MaxMoves, func(d engine.Direction, res engine.MoveResult) {
		n++
		if opts.Quiet {
			return
		}
		if !res.Changed {
			fmt.Fprintf(w, "%d: %s (no change)\n\n", n, d)
			return
		}
		fmt.Fprintf(w, "%d: %s (merges %d)\n%s\n", n, d, len(res.Merges), g.Board())
	})
	if err != nil {
		return report, err
	}

	fmt.Fprintf(w, "final\n%s\n%s\n", report.Board, report)
	return report, nil
}
