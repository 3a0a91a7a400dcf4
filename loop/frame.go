package loop

import "github.com/plus3/blockfall/tetris"

// Frame is the per-frame context handed to every system.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	// Engine is read-only for systems until the commands are flushed.
	Engine *tetris.Engine
}

func newFrame(dt float64, engine *tetris.Engine) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Engine:    engine,
	}
}
