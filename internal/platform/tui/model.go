package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/core"
)

// Game is what the terminal loop needs from a running puzzle.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model drives a Game from Bubble Tea messages. Keys pressed between ticks
// accumulate in one input frame that the next tick hands to Step.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel wraps game. Seed 0 picks a clock-based seed and a nil logger
// discards output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// helpRows is the number of rows reserved below the game for key help.
func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, group := range m.keyMapper.Keys().FullHelp() {
		rows = max(rows, len(group))
	}
	return rows
}

// gameConfig is the runtime config as seen by the game, minus the help rows.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-m.helpRows(), 0)
	return cfg
}

// layout fits the screen buffer and the game to the window.
func (m Model) layout() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.game.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Init starts the first game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "title", m.game.Title(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize refits the board; the running game is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()

	return m, nil
}

// handleTick feeds the collected input to the game. Restart is only honored
// once the game has ended.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View draws the game above the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program and returns the state the game ended in.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return game.State(), err
	}
	return game.State(), nil
}
