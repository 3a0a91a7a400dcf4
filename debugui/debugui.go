// Package debugui provides a Dear ImGui overlay for the windowed front-end.
// Windows are plain render functions deferred to the end of each frame, so
// they draw the post-update engine state.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers every item's render function. When InputState is set it is
// refreshed from the current ImGui IO first.
type System struct {
	Items      []Item
	InputState *InputState
}

func (s *System) Execute(frame *loop.Frame) {
	if s.InputState != nil {
		io := imgui.CurrentIO()
		s.InputState.WantCaptureMouse = io.WantCaptureMouse()
		s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}
