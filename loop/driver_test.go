package loop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/plus3/drift/loop"
	"github.com/plus3/drift/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverHandle(t *testing.T) {
	world := newWorld()
	driver := loop.NewDriver(loop.NewScheduler(world), nil)
	driver.Scheduler().Register(loop.SimulationSystem{})

	rec := &sim.Recorder{}

	driver.Handle(sim.ControllerAxisEvent{Device: 0, Axis: 0, Position: 0.5}, nil)
	v, ok := world.Input().Axis(sim.AxisKey{})
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	driver.Handle(sim.UpdateEvent{DT: 1}, nil)
	assert.InDelta(t, 0.75, world.Entity(0).Rotation, 1e-12)

	driver.Handle(sim.RenderEvent{Viewport: sim.Viewport{Width: 400, Height: 400}}, rec)
	assert.Len(t, rec.Squares(), 2)

	// render without a surface is counted but draws nothing
	driver.Handle(sim.RenderEvent{}, nil)

	assert.Equal(t, loop.EventCounts{Render: 2, Update: 1, Axis: 1}, driver.Counts())
}

func TestDriverPump(t *testing.T) {
	t.Run("runs until the source is exhausted", func(t *testing.T) {
		world := newWorld()
		driver := loop.NewDriver(loop.NewScheduler(world), nil)
		driver.Scheduler().Register(loop.SimulationSystem{})

		src := loop.NewSliceSource(
			sim.UpdateEvent{DT: 0.5},
			sim.RenderEvent{Viewport: sim.Viewport{Width: 400, Height: 400}},
			sim.UpdateEvent{DT: 0.5},
		)
		rec := &sim.Recorder{}

		require.NoError(t, driver.Pump(context.Background(), src, rec))
		assert.Equal(t, 0, src.Remaining())
		assert.InDelta(t, 0.4, world.Entity(0).Position.X, 1e-12)
		assert.Len(t, rec.Calls, 3)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		driver := loop.NewDriver(loop.NewScheduler(newWorld()), nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := driver.Pump(ctx, loop.NewSliceSource(sim.UpdateEvent{DT: 1}), nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, uint64(0), driver.Counts().Update)
	})

	t.Run("wraps source errors", func(t *testing.T) {
		boom := errors.New("boom")
		driver := loop.NewDriver(loop.NewScheduler(newWorld()), nil)

		err := driver.Pump(context.Background(), failingSource{err: boom}, nil)
		assert.ErrorIs(t, err, boom)
	})
}

type failingSource struct {
	err error
}

func (f failingSource) Next(context.Context) (sim.Event, error) {
	return nil, f.err
}

func TestDriverDeterminism(t *testing.T) {
	script, err := loop.ParseScript([]byte(`
dt: 0.016
frames:
  - repeat: 30
  - axes: [{device: 0, axis: 0, value: 0.7}]
    repeat: 90
  - axes: [{device: 0, axis: 0, value: -1}]
    repeat: 45
`))
	require.NoError(t, err)

	run := func() []sim.Entity {
		world := sim.NewWorld(sim.DefaultConfig(),
			sim.Entity{Color: sim.Red},
			sim.Entity{Position: sim.Vector2{X: 0.3, Y: -0.6}, Rotation: 2})
		driver := loop.NewDriver(loop.NewScheduler(world), nil)
		driver.Scheduler().Register(loop.SimulationSystem{})
		require.NoError(t, driver.Pump(context.Background(), script.Source(), nil))
		return world.Entities()
	}

	assert.Equal(t, run(), run())
}
