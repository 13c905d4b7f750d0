// Package debugui draws Dear ImGui debug windows over the game: an engine state
// inspector and scheduler timing statistics.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetris/loop"
)

// Item holds a Dear ImGui render function that runs once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming input this frame.
// Game input should ignore the keyboard while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers every item's render function to the end of the frame, after the
// engine has ticked. It also refreshes the shared input state.
type System struct {
	Items []Item
	Input *InputState
}

// Add registers a render function.
func (s *System) Add(render func()) {
	s.Items = append(s.Items, Item{Render: render})
}

func (s *System) Execute(frame *loop.Frame) {
	if s.Input != nil {
		io := imgui.CurrentIO()
		s.Input.WantCaptureMouse = io.WantCaptureMouse()
		s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}
