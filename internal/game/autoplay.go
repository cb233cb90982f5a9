package game

import (
	"fmt"

	"github.com/vovakirdan/tile2048/internal/board"
	"github.com/vovakirdan/tile2048/internal/engine"
)

// Policy chooses the next direction for a headless game.
// It returns false when it has nothing more to play.
type Policy interface {
	Next(b board.Board) (engine.Direction, bool)
}

// ScriptPolicy replays a fixed list of directions.
type ScriptPolicy struct {
	moves []engine.Direction
	pos   int
}

// NewScriptPolicy returns a policy that plays moves in order.
func NewScriptPolicy(moves []engine.Direction) *ScriptPolicy {
	return &ScriptPolicy{moves: moves}
}

// ParseScript builds a ScriptPolicy from tokens like "left,up,down".
func ParseScript(s string) (*ScriptPolicy, error) {
	moves, err := engine.ParseDirections(s)
	if err != nil {
		return nil, err
	}
	return NewScriptPolicy(moves), nil
}

// Next returns the next scripted direction.
func (p *ScriptPolicy) Next(board.Board) (engine.Direction, bool) {
	if p.pos >= len(p.moves) {
		return 0, false
	}
	d := p.moves[p.pos]
	p.pos++
	return d, true
}

// GreedyPolicy picks the legal move with the most merges, then the most
// empty cells afterwards. Ties go to the earlier direction in engine.Directions.
type GreedyPolicy struct{}

// Next returns the best legal direction, or false when none is left.
func (GreedyPolicy) Next(b board.Board) (engine.Direction, bool) {
	preview := engine.Preview(b)

	var (
		best      engine.Direction
		bestMerge = -1
		bestEmpty = -1
	)
	for _, d := range engine.Directions {
		res := preview[d]
		if !res.Changed {
			continue
		}
		merges := len(res.Merges)
		empty := len(res.Board.EmptyCells())
		if merges > bestMerge || (merges == bestMerge && empty > bestEmpty) {
			best, bestMerge, bestEmpty = d, merges, empty
		}
	}
	return best, bestMerge >= 0
}

// Report summarizes a headless run.
type Report struct {
	Moves   int // Moves that changed the board
	Skipped int // Directions that changed nothing
	Status  engine.Status
	MaxTile int
	Board   board.Board
}

// String formats the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("status=%s moves=%d skipped=%d max=%d", r.Status, r.Moves, r.Skipped, r.MaxTile)
}

// Play drives g with policy until the game ends, the policy runs out or
// maxMoves directions were tried. maxMoves <= 0 means no limit.
// onMove, if non-nil, is called after every applied direction.
func Play(g *Game, policy Policy, maxMoves int, onMove func(engine.Direction, engine.MoveResult)) (Report, error) {
	var report Report

	for tried := 0; maxMoves <= 0 || tried < maxMoves; tried++ {
		if g.Status().Terminal() {
			break
		}
		dir, ok := policy.Next(g.Board())
		if !ok {
			break
		}
		res, err := g.Move(dir)
		if err != nil {
			return report, fmt.Errorf("game: play %s: %w", dir, err)
		}
		if !res.Changed {
			report.Skipped++
		}
		if onMove != nil {
			onMove(dir, res)
		}
	}

	report.Moves = g.Moves()
	report.Status = g.Status()
	report.Board = g.Board()
	report.MaxTile = report.Board.MaxTile()
	return report, nil
}
