package loop

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// Action is a discrete player or timer command.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionRotate
	ActionStep
	ActionHardDrop
	ActionReset
)

var actionNames = [...]string{"left", "right", "rotate", "step", "hard-drop", "reset"}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Apply performs a on the engine.
func Apply(engine *tetris.Engine, a Action) {
	switch a {
	case ActionLeft:
		engine.Shift(tetris.DirectionLeft)
	case ActionRight:
		engine.Shift(tetris.DirectionRight)
	case ActionRotate:
		engine.Rotate()
	case ActionStep:
		engine.Step()
	case ActionHardDrop:
		engine.HardDrop()
	case ActionReset:
		engine.Reset()
	}
}
