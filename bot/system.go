package bot

import "github.com/plus3/blockfall/loop"

// System plans each new piece and feeds the plan to the engine a few actions
// per frame. With AutoReset it restarts finished games and records their scores.
type System struct {
	Planner         *Planner
	ActionsPerFrame int
	AutoReset       bool

	// Scores holds the final score of every finished game.
	Scores []int

	queue   []loop.Action
	pieces  int
	planned bool
}

func (s *System) Execute(frame *loop.Frame) {
	engine := frame.Engine

	if engine.IsGameOver() {
		s.queue = s.queue[:0]
		s.planned = false
		if s.AutoReset {
			s.Scores = append(s.Scores, engine.Score())
			frame.Commands.Push(loop.ActionReset)
		}
		return
	}

	if pieces := engine.Stats().Pieces; !s.planned || pieces != s.pieces {
		s.pieces = pieces
		s.planned = true
		s.queue = s.queue[:0]
		if plan, ok := s.Planner.Best(engine); ok {
			s.queue = append(s.queue, plan.Actions()...)
		}
	}

	n := s.ActionsPerFrame
	if n <= 0 || n > len(s.queue) {
		n = len(s.queue)
	}
	for _, a := range s.queue[:n] {
		frame.Commands.Push(a)
	}
	s.queue = s.queue[n:]
}
