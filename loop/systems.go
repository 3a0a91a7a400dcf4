package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Inbox is a bounded queue that carries actions from input goroutines to the
// scheduler goroutine. It is the only loop type safe for concurrent use.
type Inbox struct {
	ch chan Action
}

// NewInbox creates an inbox holding up to size pending actions.
func NewInbox(size int) *Inbox {
	return &Inbox{ch: make(chan Action, size)}
}

// Post queues a without blocking. It reports false when the inbox is full
// and the action was dropped.
func (i *Inbox) Post(a Action) bool {
	select {
	case i.ch <- a:
		return true
	default:
		return false
	}
}

// InputSystem moves every action waiting in the inbox onto the frame.
type InputSystem struct {
	Inbox *Inbox
}

func (s *InputSystem) Execute(frame *Frame) {
	for {
		select {
		case a := <-s.Inbox.ch:
			frame.Commands.Push(a)
		default:
			return
		}
	}
}

// GravitySystem queues one step each time Interval has elapsed. A reset
// queued earlier in the frame restarts the interval.
type GravitySystem struct {
	Interval time.Duration
	elapsed  float64
}

func (s *GravitySystem) Execute(frame *Frame) {
	for _, a := range frame.Commands.Pending() {
		if a == ActionReset {
			s.elapsed = 0
			return
		}
	}

	s.elapsed += frame.DeltaTime
	if s.elapsed >= s.Interval.Seconds() {
		s.elapsed = 0
		frame.Commands.Push(ActionStep)
	}
}

// Renderer draws a read-only view of the engine.
type Renderer interface {
	Render(engine *tetris.Engine)
}

// RenderFunc adapts a function to a Renderer.
type RenderFunc func(engine *tetris.Engine)

func (f RenderFunc) Render(engine *tetris.Engine) {
	f(engine)
}

// RenderSystem draws the engine after the frame's actions are applied.
type RenderSystem struct {
	Renderer Renderer
}

func (s *RenderSystem) Execute(frame *Frame) {
	engine := frame.Engine
	frame.Commands.Defer(func() {
		s.Renderer.Render(engine)
	})
}
