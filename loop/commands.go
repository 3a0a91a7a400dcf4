package loop

import "github.com/plus3/blockfall/tetris"

// Commands provides a buffer for engine actions and deferred work collected
// while systems run. Flush applies the actions in queue order and then runs
// the deferred functions, so those observe the post-mutation state.
type Commands struct {
	actions []Action
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Push queues an engine action.
func (c *Commands) Push(a Action) {
	c.actions = append(c.actions, a)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Pending returns the actions queued so far this frame.
func (c *Commands) Pending() []Action {
	return c.actions
}

// Flush applies all queued actions to the engine, runs the deferred
// functions and resets the buffer state.
func (c *Commands) Flush(engine *tetris.Engine) {
	for _, a := range c.actions {
		Apply(engine, a)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
}
