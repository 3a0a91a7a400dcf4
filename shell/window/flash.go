package window

import (
	"github.com/plus3/blockfall/loop"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const flashDuration = 0.3

// Flash fades a white overlay over the board after a line clear.
type Flash struct {
	tween *gween.Tween
	alpha float32
}

// Trigger restarts the fade at full strength.
func (f *Flash) Trigger() {
	f.tween = gween.New(1, 0, flashDuration, ease.OutQuad)
	f.alpha = 1
}

// Update advances the fade by dt seconds and returns the current alpha.
func (f *Flash) Update(dt float32) float32 {
	if f.tween == nil {
		return 0
	}
	current, finished := f.tween.Update(dt)
	f.alpha = current
	if finished {
		f.tween = nil
		f.alpha = 0
	}
	return f.alpha
}

// Alpha is the overlay strength in [0, 1].
func (f *Flash) Alpha() float32 {
	return f.alpha
}

// FlashSystem triggers the flash whenever a settle clears lines and advances
// it every frame.
type FlashSystem struct {
	Flash *Flash
	lines int
}

func (s *FlashSystem) Execute(frame *loop.Frame) {
	s.Flash.Update(float32(frame.DeltaTime))
	frame.Commands.Defer(func() {
		lines := frame.Engine.Stats().Lines
		if lines > s.lines {
			s.Flash.Trigger()
		}
		s.lines = lines
	})
}
