package sim

// Event is one item of the frame-event stream produced by the platform layer.
type Event interface {
	event()
}

// RenderEvent asks for the world to be drawn into a viewport.
type RenderEvent struct {
	Viewport Viewport
}

// UpdateEvent asks for the simulation to advance by DT seconds.
type UpdateEvent struct {
	DT float64
}

// ControllerAxisEvent reports a new value for an analog axis.
type ControllerAxisEvent struct {
	Device   int
	Axis     int
	Position float64
}

func (RenderEvent) event()         {}
func (UpdateEvent) event()         {}
func (ControllerAxisEvent) event() {}
