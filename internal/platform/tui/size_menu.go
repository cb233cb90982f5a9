package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile2048/internal/core"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	hintStyle   = styleFor(core.ColorGray)
)

// SizeModel lets users choose the board size before a game.
type SizeModel struct {
	sizes     []int
	cursor    int
	target    int
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
}

// NewSizeModel creates a size picker over sizes, starting on current.
func NewSizeModel(width, height int, sizes []int, current, target int) SizeModel {
	cursor := 0
	for i, s := range sizes {
		if s == current {
			cursor = i
		}
	}
	return SizeModel{
		sizes:     sizes,
		cursor:    cursor,
		target:    target,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SizeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.sizes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.sizes) > 0 {
			m.choosing = false
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the size selection.
func (m SizeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Reach %d. Select board size:", m.target), m.width))
	b.WriteString("\n\n")

	for i, s := range m.sizes {
		label := fmt.Sprintf("%dx%d", s, s)
		if s == 4 {
			label += " (classic)"
		}
		line := "  " + label
		if i == m.cursor {
			line = cursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Enter: Select  |  Esc/Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen size, or false if still choosing or quit.
func (m SizeModel) Selected() (int, bool) {
	if m.choosing || m.quitting || len(m.sizes) == 0 {
		return 0, false
	}
	return m.sizes[m.cursor], true
}

// IsQuitting returns true if user wants to quit.
func (m SizeModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text, which may carry ANSI styling, to be centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunSizeSelector runs the size picker. It returns false when the user quit.
func RunSizeSelector(cfg core.RuntimeConfig, sizes []int, current, target int) (int, bool, error) {
	model := NewSizeModel(cfg.ScreenW, cfg.ScreenH, sizes, current, target)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, ok := finalModel.(SizeModel)
	if !ok {
		return 0, false, nil
	}

	size, ok := m.Selected()
	return size, ok, nil
}
