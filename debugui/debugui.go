// Package debugui provides a Dear ImGui overlay for inspecting a running world.
// Panels are registered with an ImguiSystem, which queues their render
// functions on the frame's command buffer each update.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/drift/loop"
)

// Panel renders one ImGui window for the current frame.
type Panel interface {
	Render(frame *loop.Frame)
}

// PanelFunc adapts a plain function to the Panel interface.
type PanelFunc func(frame *loop.Frame)

func (f PanelFunc) Render(frame *loop.Frame) {
	f(frame)
}

// InputCapture tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every panel to the end of the frame.
// It also records the current input capture state.
type ImguiSystem struct {
	Panels  []Panel
	Capture InputCapture
}

// Execute updates input capture state and queues all panel renders for execution.
func (s *ImguiSystem) Execute(frame *loop.Frame) {
	s.Capture.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	s.Capture.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, panel := range s.Panels {
		frame.Commands.Defer(func() { panel.Render(frame) })
	}
}

// Default returns the standard panel set for scheduler.
func Default(scheduler *loop.Scheduler, historyFrames int) *ImguiSystem {
	return &ImguiSystem{
		Panels: []Panel{
			NewEntityInspector(),
			NewInputPanel(),
			NewPerformanceStats(scheduler, historyFrames),
		},
	}
}
