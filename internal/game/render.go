package game

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tile2048/internal/board"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/engine"
)

const (
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileColors approximates the classic tile palette in 256 colors.
var tileColors = map[int]core.Color{
	2:    255,
	4:    230,
	8:    215,
	16:   209,
	32:   203,
	64:   202,
	128:  221,
	256:  220,
	512:  220,
	1024: 178,
	2048: 178,
}

// tileColor returns the display color for a tile value.
func tileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	return core.ColorRed
}

// cellWidth is the width of each cell including its left border.
// It fits the widest reachable value, the target, with one space each side.
func (g *Game) cellWidth() int {
	return len(strconv.Itoa(g.settings.Target)) + 3
}

// boardSize returns the board frame dimensions in characters.
func (g *Game) boardSize() (w, h int) {
	n := g.settings.Size
	return n*g.cellWidth() + 1, n*cellHeight + 1
}

// layoutSize returns the minimum screen needed: board, HUD and a margin.
func (g *Game) layoutSize() (w, h int) {
	bw, bh := g.boardSize()
	return bw + 2, hudHeight + 1 + bh + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)

	if g.animating && g.animationPhase == PhaseSlide {
		g.renderSliding(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, boardX, boardY)
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	w, h := g.layoutSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD draws the title, move counter and max tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(max(boardX+boardW-len(maxStr), boardX), 1, maxStr)

	sizeStr := fmt.Sprintf("%dx%d", g.settings.Size, g.settings.Size)
	dst.DrawTextColor(boardX+(boardW-len(sizeStr))/2, 2, sizeStr, core.ColorGray)
}

// renderGrid draws the NxN cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	n := g.settings.Size
	cw := g.cellWidth()

	for y, yLim := 0, n+1; y < yLim; y++ {
		for x, xLim := 0, n+1; x < xLim; x++ {
			px := boardX + x*cw
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorFrame)

			if x < n {
				for i := 1; i < cw; i++ {
					dst.SetColor(px+i, py, '─', core.ColorFrame)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorFrame)
				}
			}
		}
	}
}

// renderTiles draws the settled board. The spawned tile is highlighted
// while it pops in.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	var popping *board.Tile
	if g.animating && g.animationPhase == PhasePop && len(g.animations) == 1 {
		a := g.animations[0]
		popping = &board.Tile{Position: a.To, Value: a.Value}
	}

	n := g.settings.Size
	for row, rowLim := 0, n; row < rowLim; row++ {
		for col, colLim := 0, n; col < colLim; col++ {
			v := g.board.At(row, col)
			if v == 0 {
				continue
			}
			c := tileColor(v)
			if popping != nil && popping.Row == row && popping.Col == col {
				c = core.ColorGreen
			}
			g.drawTile(dst, boardX, boardY, float64(row), float64(col), v, c)
		}
	}
}

// renderSliding draws tiles at their interpolated positions with their
// pre-merge values.
func (g *Game) renderSliding(dst *core.Screen, boardX, boardY int) {
	for i := range g.animations {
		a := &g.animations[i]
		row, col := a.interpolatePosition()
		g.drawTile(dst, boardX, boardY, row, col, a.Value, tileColor(a.Value))
	}
}

// drawTile writes a value centered in the cell at a fractional grid position.
func (g *Game) drawTile(dst *core.Screen, boardX, boardY int, row, col float64, v int, c core.Color) {
	cw := g.cellWidth()
	cellX := boardX + int(math.Round(col*float64(cw))) + 1
	cellY := boardY + int(math.Round(row*float64(cellHeight))) + 1

	valStr := strconv.Itoa(v)
	padLeft := max((cw-1-len(valStr))/2, 0)
	dst.DrawTextColor(cellX+padLeft, cellY, valStr, c)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, core.ColorYellow, "PAUSED", "Press P to resume")
	case g.status == engine.StatusWon:
		g.drawOverlay(dst, centerX, centerY, core.ColorGreen,
			"YOU WIN!", fmt.Sprintf("Reached %d in %d moves", g.settings.Target, g.moves), "R: restart  Q: quit")
	case g.status == engine.StatusLost:
		g.drawOverlay(dst, centerX, centerY, core.ColorRed,
			"GAME OVER", fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "R: restart  Q: quit")
	}
}

// drawOverlay draws a centered, framed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, boxY+1+i, line, c)
	}
}
