package loop

// System represents a behavior executed once per update frame.
// Systems may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}

// SimulationSystem advances the world by the frame's delta time.
type SimulationSystem struct{}

func (SimulationSystem) Execute(frame *Frame) {
	frame.World.Update(frame.DeltaTime)
}
