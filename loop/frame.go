package loop

import "github.com/plus3/drift/sim"

type Frame struct {
	Index     uint64
	DeltaTime float64
	Commands  *Commands
	World     *sim.World
}

func newFrame(index uint64, dt float64, world *sim.World, commands *Commands) *Frame {
	return &Frame{
		Index:     index,
		DeltaTime: dt,
		Commands:  commands,
		World:     world,
	}
}
