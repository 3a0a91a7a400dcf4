package loop

import (
	"github.com/plus3/blockfall/tetris"
	log "github.com/sirupsen/logrus"
)

// LogSystem reports settles, clears and game over on a logger.
type LogSystem struct {
	Logger log.FieldLogger

	last    tetris.Stats
	wasOver bool
}

func (s *LogSystem) Execute(frame *Frame) {
	engine := frame.Engine
	frame.Commands.Defer(func() {
		s.observe(engine)
	})
}

func (s *LogSystem) observe(engine *tetris.Engine) {
	stats, over := engine.Stats(), engine.IsGameOver()
	defer func() {
		s.last, s.wasOver = stats, over
	}()

	if stats.Pieces < s.last.Pieces {
		s.Logger.Info("game reset")
		return
	}
	if stats.Pieces > s.last.Pieces {
		entry := s.Logger.WithFields(log.Fields{
			"pieces": stats.Pieces,
			"score":  engine.Score(),
		})
		if stats.LastClear > 0 {
			entry.WithField("lines", stats.LastClear).Debug("lines cleared")
		} else {
			entry.Trace("piece settled")
		}
	}
	if over && !s.wasOver {
		s.Logger.WithFields(log.Fields{
			"score":  engine.Score(),
			"pieces": stats.Pieces,
			"lines":  stats.Lines,
		}).Info("game over")
	}
}
