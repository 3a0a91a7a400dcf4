package audio

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// CueSystem compares the engine counters at the end of each frame with the
// previous frame and plays the matching cue.
type CueSystem struct {
	Player Player

	last     tetris.Stats
	wasOver  bool
	observed bool
}

func (s *CueSystem) Execute(frame *loop.Frame) {
	engine := frame.Engine
	frame.Commands.Defer(func() {
		s.observe(engine)
	})
}

func (s *CueSystem) observe(engine *tetris.Engine) {
	stats, over := engine.Stats(), engine.IsGameOver()
	defer func() {
		s.last, s.wasOver, s.observed = stats, over, true
	}()

	// The first frame and resets only establish a baseline.
	if !s.observed || stats.Pieces < s.last.Pieces {
		return
	}

	switch {
	case over && !s.wasOver:
		s.Player.Play(CueGameOver)
	case stats.Pieces == s.last.Pieces:
	case stats.Lines-s.last.Lines >= 4:
		s.Player.Play(CueFourLines)
	case stats.Lines > s.last.Lines:
		s.Player.Play(CueClear)
	default:
		s.Player.Play(CueSettle)
	}
}
