package line

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	log "github.com/sirupsen/logrus"
)

const (
	prompt        = "Enter command (a/d/w/s/x/r/q): "
	restartPrompt = "Press 'r' to restart or anything else to quit: "
	invalid       = "Invalid command!"
)

var commands = map[string]loop.Action{
	"a": loop.ActionLeft,
	"d": loop.ActionRight,
	"w": loop.ActionRotate,
	"s": loop.ActionStep,
	"x": loop.ActionHardDrop,
	"r": loop.ActionReset,
}

// Session plays one game over a line-oriented reader and writer. Input is
// blocking, so gravity is applied from the wall time between two lines: at
// most one step per command.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Engine *tetris.Engine
	Config config.Config
	Player audio.Player
	Logger log.FieldLogger

	// Clear prefixes every frame with an ANSI clear-screen sequence.
	Clear bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Run returns nil when the player quits or the input ends, and the read or
// write error otherwise. ctx is checked between lines.
func (s *Session) Run(ctx context.Context) error {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	player := s.Player
	if player == nil {
		player = audio.Silent{}
	}

	renderer := NewRenderer(s.Out, s.Clear)
	inbox := loop.NewInbox(1)
	scheduler := loop.NewScheduler(s.Engine)
	scheduler.Register(&loop.InputSystem{Inbox: inbox})
	scheduler.Register(&loop.GravitySystem{Interval: s.Config.StepInterval})
	scheduler.Register(&loop.LogSystem{Logger: s.Logger})
	scheduler.Register(&audio.CueSystem{Player: player})
	scheduler.Register(&loop.RenderSystem{Renderer: renderer})

	s.Logger.WithFields(s.Config.Fields()).Info("line session started")
	defer func() {
		s.Logger.WithField("score", s.Engine.Score()).Info("line session ended")
	}()

	scanner := bufio.NewScanner(s.In)
	last := now()
	scheduler.Once(0)

	for ctx.Err() == nil {
		if err := renderer.Err(); err != nil {
			return err
		}
		cmd, ok := s.read(scanner, prompt)
		if !ok {
			return s.finish(scanner)
		}

		switch action, known := commands[cmd]; {
		case cmd == "q":
			return s.goodbye()
		case cmd == "":
		case !known:
			if _, err := fmt.Fprintln(s.Out, invalid); err != nil {
				return fmt.Errorf("write: %w", err)
			}
			s.Logger.WithField("input", cmd).Debug("invalid command")
		default:
			inbox.Post(action)
		}

		t := now()
		scheduler.Once(t.Sub(last).Seconds())
		last = t

		if !s.Engine.IsGameOver() {
			continue
		}
		if cmd, _ = s.read(scanner, restartPrompt); cmd != "r" {
			if err := s.finish(scanner); err != nil {
				return err
			}
			return s.goodbye()
		}
		inbox.Post(loop.ActionReset)
		last = now()
		scheduler.Once(0)
	}
	return renderer.Err()
}

func (s *Session) read(scanner *bufio.Scanner, text string) (string, bool) {
	fmt.Fprint(s.Out, text)
	if !scanner.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(scanner.Text())), true
}

func (s *Session) finish(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return nil
}

func (s *Session) goodbye() error {
	_, err := fmt.Fprintf(s.Out, "Thanks for playing! Final score: %d\n", s.Engine.Score())
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
