package loop_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// ExampleScheduler wires a game loop: queued input, gravity and a renderer
// that runs after the frame's actions reached the engine.
func ExampleScheduler() {
	engine := tetris.NewSeeded(10, 20, 1)
	inbox := loop.NewInbox(16)

	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.InputSystem{Inbox: inbox})
	scheduler.Register(&loop.GravitySystem{Interval: 500 * time.Millisecond})
	scheduler.Register(&loop.RenderSystem{Renderer: loop.RenderFunc(func(e *tetris.Engine) {
		fmt.Printf("pieces=%d over=%v\n", e.Stats().Pieces, e.IsGameOver())
	})})

	inbox.Post(loop.ActionHardDrop)
	scheduler.Once(1.0 / 60.0)

	inbox.Post(loop.ActionHardDrop)
	inbox.Post(loop.ActionReset)
	scheduler.Once(1.0 / 60.0)

	// Output:
	// pieces=1 over=false
	// pieces=0 over=false
}
