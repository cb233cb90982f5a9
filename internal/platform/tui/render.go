package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile2048/internal/core"
)

// colorStyles holds one lipgloss style per 256-color code.
var colorStyles = func() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	styles[core.ColorDefault] = lipgloss.NewStyle()
	return styles
}()

// styleFor returns the style for a screen color.
func styleFor(c core.Color) lipgloss.Style {
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, yLim := 0, s.Height(); y < yLim; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
