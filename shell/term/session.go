package term

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	log "github.com/sirupsen/logrus"
)

// Session runs one interactive game on an initialized screen until the
// player quits or ctx is cancelled. The caller owns the screen and calls
// Fini after Run returns.
type Session struct {
	Screen tcell.Screen
	Engine *tetris.Engine
	Config config.Config
	Player audio.Player
	Logger log.FieldLogger
}

func (s *Session) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbox := loop.NewInbox(64)
	scheduler := loop.NewScheduler(s.Engine)
	scheduler.Register(&loop.InputSystem{Inbox: inbox})
	scheduler.Register(&loop.GravitySystem{Interval: s.Config.StepInterval})
	scheduler.Register(&loop.LogSystem{Logger: s.Logger})
	scheduler.Register(&audio.CueSystem{Player: s.Player})
	scheduler.Register(&loop.RenderSystem{Renderer: NewRenderer(s.Screen)})

	go s.poll(inbox, cancel)

	s.Logger.WithFields(s.Config.Fields()).Info("terminal session started")
	scheduler.Run(ctx, s.Config.FrameInterval)

	stats := scheduler.GetStats()
	s.Logger.WithFields(log.Fields{
		"frames": stats.Frames,
		"score":  s.Engine.Score(),
	}).Info("terminal session ended")
}

func (s *Session) poll(inbox *loop.Inbox, quit context.CancelFunc) {
	for {
		switch ev := s.Screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Screen.Sync()
		case *tcell.EventKey:
			if !s.handleKey(ev.Key(), ev.Rune(), inbox, quit) {
				return
			}
		}
	}
}

// handleKey posts the key's action and reports whether polling continues.
func (s *Session) handleKey(key tcell.Key, ch rune, inbox *loop.Inbox, quit context.CancelFunc) bool {
	action, ok, stop := KeyAction(key, ch)
	if stop {
		quit()
		return false
	}
	if ok && !inbox.Post(action) {
		s.Logger.WithField("action", action).Warn("input dropped")
	}
	return true
}
