package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/game"
	"github.com/vovakirdan/tile2048/internal/platform/tui"
)

var (
	flagSize   int
	flagTarget int
	flagFPS    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Without --size a picker asks for the board size first.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P/Esc            - Pause
  R                - Restart (after the game ends)
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  tile2048 play
  tile2048 play --size 4
  tile2048 play --size 6 --target 8192 --seed 7
  tile2048 play --log-level debug --log-file /tmp/tile2048.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the board flags on cmd.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagSize, "size", config.Default().Board.Size, "Board size (2-8); skips the size picker")
	cmd.Flags().IntVar(&flagTarget, "target", config.Default().Board.Target, "Winning tile (power of two)")
	cmd.Flags().IntVar(&flagFPS, "fps", config.Default().Display.TickRate, "Tick rate (frames per second)")
}

// boardSizes lists the sizes offered by the picker.
func boardSizes() []int {
	sizes := make([]int, 0, config.MaxBoardSize-1)
	for s := 2; s <= config.MaxBoardSize; s++ {
		sizes = append(sizes, s)
	}
	return sizes
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	exitOnError(err)

	logger := newLogger(os.Stderr, cfg)

	// Get terminal size early for the size picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     flagSeed,
	}

	if !cmd.Flags().Changed("size") {
		size, ok, selErr := tui.RunSizeSelector(rc, boardSizes(), cfg.Board.Size, cfg.Board.Target)
		exitOnError(selErr)
		// User quit the picker
		if !ok {
			return
		}
		cfg.Board.Size = size
	}

	gameLog, closeLog, err := openLogFile(cfg)
	exitOnError(err)
	defer closeLog()

	g, err := game.New(game.SettingsFrom(cfg), gameLog)
	exitOnError(err)

	state, runErr := tui.Run(g, rc, gameLog)
	if runErr != nil {
		closeLog()
		exitOnError(runErr)
	}

	// Report the outcome once the terminal is restored
	switch {
	case state.Won:
		logger.Info("won", "target", cfg.Board.Target, "moves", state.Moves)
	case state.GameOver:
		logger.Info("game over", "max", state.MaxTile, "moves", state.Moves)
	default:
		logger.Info("quit", "max", state.MaxTile, "moves", state.Moves)
	}
}
