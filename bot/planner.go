// Package bot plays the game by simulating every reachable drop of the
// falling piece on a copy of the engine and picking the best scored board.
package bot

import (
	"math"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Plan is a placement for the falling piece: rotate, then shift, then drop.
type Plan struct {
	Rotations int
	Shift     int // negative is left
	Score     float64
}

// Actions expands the plan into the actions that carry it out.
func (p Plan) Actions() []loop.Action {
	actions := make([]loop.Action, 0, p.Rotations+abs(p.Shift)+1)
	for range p.Rotations {
		actions = append(actions, loop.ActionRotate)
	}
	shift := loop.ActionRight
	if p.Shift < 0 {
		shift = loop.ActionLeft
	}
	for range abs(p.Shift) {
		actions = append(actions, shift)
	}
	return append(actions, loop.ActionHardDrop)
}

type Planner struct {
	Strategy Strategy
}

func NewPlanner() *Planner {
	return &Planner{Strategy: DefaultStrategy()}
}

const gameOverScore = -1e9

// Best returns the highest scoring placement of the falling piece. The
// engine is not modified. ok is false when the game is already over.
func (p *Planner) Best(e *tetris.Engine) (best Plan, ok bool) {
	if e.IsGameOver() {
		return Plan{}, false
	}

	best.Score = math.Inf(-1)
	for rotations := range 4 {
		for shift := -e.Width(); shift <= e.Width(); shift++ {
			score, reachable := p.try(e, rotations, shift)
			if !reachable {
				continue
			}
			if score > best.Score {
				best = Plan{Rotations: rotations, Shift: shift, Score: score}
			}
		}
	}
	return best, !math.IsInf(best.Score, -1)
}

// try plays a placement on a clone. Placements whose rotations or shifts are
// rejected are unreachable; they duplicate a shorter plan.
func (p *Planner) try(e *tetris.Engine, rotations, shift int) (float64, bool) {
	sim := e.Clone()

	for range rotations {
		before := sim.Active()
		sim.Rotate()
		if sim.Active().Equal(before) {
			return 0, false
		}
	}

	dir := tetris.DirectionRight
	if shift < 0 {
		dir = tetris.DirectionLeft
	}
	for range abs(shift) {
		before := sim.Active()
		sim.Shift(dir)
		if sim.Active().Equal(before) {
			return 0, false
		}
	}

	sim.HardDrop()
	if sim.IsGameOver() {
		return gameOverScore, true
	}
	return p.Strategy.evaluate(newBoard(sim), sim.Stats().LastClear), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
