package loop

import "github.com/plus3/drift/sim"

// Commands buffers world mutations requested by systems. They are applied at
// the end of the frame so every system of a frame sees the same input state.
type Commands struct {
	axes   []axisCommand
	defers []func()
}

type axisCommand struct {
	key   sim.AxisKey
	value float64
}

func newCommands() *Commands {
	return &Commands{}
}

// SetAxis queues an axis overwrite.
func (c *Commands) SetAxis(key sim.AxisKey, value float64) {
	c.axes = append(c.axes, axisCommand{key: key, value: value})
}

// Defer queues a function to run after the axis writes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.axes) + len(c.defers)
}

// Flush applies all queued commands to world, resetting the buffer state.
// Axis writes queued by a deferred function are kept for the next flush.
func (c *Commands) Flush(world *sim.World) {
	for _, cmd := range c.axes {
		world.SetAxis(cmd.key.Device, cmd.key.Axis, cmd.value)
	}
	applied := len(c.axes)

	defers := c.defers
	c.defers = nil
	for _, fn := range defers {
		fn()
	}

	c.axes = c.axes[:copy(c.axes, c.axes[applied:])]
	clear(defers)
	if c.defers == nil {
		c.defers = defers[:0]
	}
}
