package platform_test

import (
	"testing"

	"github.com/plus3/drift/platform"
	"github.com/plus3/drift/sim"
	"github.com/stretchr/testify/assert"
)

type fakeGamepads struct {
	axes map[int][]float64
}

func (f *fakeGamepads) GamepadIDs() []int {
	ids := make([]int, 0, len(f.axes))
	for id := range f.axes {
		ids = append(ids, id)
	}
	return ids
}

func (f *fakeGamepads) AxisCount(id int) int {
	return len(f.axes[id])
}

func (f *fakeGamepads) AxisValue(id, axis int) float64 {
	return f.axes[id][axis]
}

func TestGamepadPoller(t *testing.T) {
	pads := &fakeGamepads{axes: map[int][]float64{
		0: {0, 0},
	}}
	poller := platform.NewGamepadPoller(pads)

	t.Run("resting axes are silent", func(t *testing.T) {
		assert.Empty(t, poller.Poll(nil))
	})

	t.Run("changes are reported once", func(t *testing.T) {
		pads.axes[0][0] = 0.5
		assert.Equal(t, []sim.Event{
			sim.ControllerAxisEvent{Device: 0, Axis: 0, Position: 0.5},
		}, poller.Poll(nil))
		assert.Empty(t, poller.Poll(nil))
	})

	t.Run("return to zero is reported", func(t *testing.T) {
		pads.axes[0][0] = 0
		assert.Equal(t, []sim.Event{
			sim.ControllerAxisEvent{Device: 0, Axis: 0, Position: 0},
		}, poller.Poll(nil))
	})

	t.Run("ordered by device then axis", func(t *testing.T) {
		pads.axes[3] = []float64{0.1, -0.2}
		pads.axes[1] = []float64{0, 1}
		pads.axes[0][1] = -1

		assert.Equal(t, []sim.Event{
			sim.ControllerAxisEvent{Device: 0, Axis: 1, Position: -1},
			sim.ControllerAxisEvent{Device: 1, Axis: 1, Position: 1},
			sim.ControllerAxisEvent{Device: 3, Axis: 0, Position: 0.1},
			sim.ControllerAxisEvent{Device: 3, Axis: 1, Position: -0.2},
		}, poller.Poll(nil))
	})

	t.Run("appends to dst", func(t *testing.T) {
		pads.axes[1][0] = 0.75
		dst := []sim.Event{sim.UpdateEvent{DT: 1}}
		got := poller.Poll(dst)
		assert.Len(t, got, 2)
		assert.Equal(t, sim.UpdateEvent{DT: 1}, got[0])
	})
}
