package game

import (
	"github.com/vovakirdan/tile2048/internal/board"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/engine"
)

// TileAnimation represents an animated tile.
type TileAnimation struct {
	Value    int // Tile value drawn while animating
	From     board.Position
	To       board.Position
	Progress float64 // 0.0 → 1.0
	Merged   bool    // Ends in a merge
	IsNew    bool    // Spawned tile (pop effect)
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// startMoveAnimation begins the slide phase for a move, queueing the pop
// of the spawned tile. Disabled phases are skipped.
func (g *Game) startMoveAnimation(moves []engine.TileMove, spawned board.Tile) {
	g.stopAnimation()

	if g.settings.SlideTicks > 0 {
		g.startSlideAnimation(moves)
		g.pendingNewTile = &spawned
		return
	}
	if g.settings.PopTicks > 0 {
		g.startPopAnimation(spawned)
	}
}

// startSlideAnimation initializes slide animations from move tracking.
func (g *Game) startSlideAnimation(moves []engine.TileMove) {
	g.animations = make([]TileAnimation, 0, len(moves))
	for _, m := range moves {
		g.animations = append(g.animations, TileAnimation{
			Value:  m.Value,
			From:   m.From,
			To:     m.To,
			Merged: m.Merged,
		})
	}
	g.animating = true
	g.animationPhase = PhaseSlide
	g.animationTicks = 0
}

// startPopAnimation initializes pop animation for a new tile.
func (g *Game) startPopAnimation(t board.Tile) {
	g.animations = []TileAnimation{{
		Value: t.Value,
		From:  t.Position,
		To:    t.Position,
		IsNew: true,
	}}
	g.animating = true
	g.animationPhase = PhasePop
	g.animationTicks = 0
}

// phaseDuration returns the tick length of a phase.
func (g *Game) phaseDuration(p AnimationPhase) int {
	switch p {
	case PhaseSlide:
		return g.settings.SlideTicks
	case PhasePop:
		return g.settings.PopTicks
	default:
		return 0
	}
}

// updateAnimation advances the animation state.
// Returns true if animation is still in progress.
func (g *Game) updateAnimation() bool {
	if !g.animating {
		return false
	}

	g.animationTicks++

	duration := g.phaseDuration(g.animationPhase)
	if duration <= 0 {
		g.finishAnimation()
		return g.animating
	}

	progress := core.ClampF(float64(g.animationTicks)/float64(duration), 0, 1)
	for i := range g.animations {
		g.animations[i].Progress = progress
	}

	if g.animationTicks >= duration {
		g.finishAnimation()
		return g.animating
	}

	return true
}

// finishAnimation completes the current animation phase.
func (g *Game) finishAnimation() {
	if g.animationPhase == PhaseSlide && g.pendingNewTile != nil && g.settings.PopTicks > 0 {
		tile := *g.pendingNewTile
		g.pendingNewTile = nil
		g.startPopAnimation(tile)
		return
	}
	g.stopAnimation()
}

// finishAnimationNow skips every remaining phase.
func (g *Game) finishAnimationNow() {
	g.stopAnimation()
}

func (g *Game) stopAnimation() {
	g.animating = false
	g.animationPhase = PhaseNone
	g.animationTicks = 0
	g.animations = nil
	g.pendingNewTile = nil
}

// Animating reports whether a slide or pop is in progress.
func (g *Game) Animating() bool {
	return g.animating
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition returns the current fractional cell during animation.
func (a *TileAnimation) interpolatePosition() (row, col float64) {
	t := easeOutQuad(a.Progress)
	row = float64(a.From.Row) + (float64(a.To.Row)-float64(a.From.Row))*t
	col = float64(a.From.Col) + (float64(a.To.Col)-float64(a.From.Col))*t
	return row, col
}
