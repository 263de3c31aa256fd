package loop_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/drift/loop"
	"github.com/plus3/drift/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGenerate(t *testing.T) {
	world := newWorld()
	driver := loop.NewDriver(loop.NewScheduler(world), nil)
	driver.Scheduler().Register(loop.SimulationSystem{})

	src := loop.NewSliceSource(
		sim.ControllerAxisEvent{Device: 0, Axis: 0, Position: 0.5},
		sim.UpdateEvent{DT: 1},
		sim.RenderEvent{Viewport: sim.Viewport{Width: 400, Height: 400}},
	)
	rec := &sim.Recorder{}
	require.NoError(t, driver.Pump(context.Background(), src, rec))

	report := loop.NewReport("run-1", "inline", driver, 3*time.Millisecond, len(rec.Calls))

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "# Run Report")
	assert.Contains(t, out, "**Run ID:** run-1")
	assert.Contains(t, out, "**Updates:** 1")
	assert.Contains(t, out, "**Renders:** 1")
	assert.Contains(t, out, "**Axis Events:** 1")
	assert.Contains(t, out, "**Draw Calls:** 3")
	assert.Contains(t, out, "**Simulated Time:** 1s")
	assert.Contains(t, out, "| 0 |")
	assert.Contains(t, out, "0.7500 |")
	assert.Contains(t, out, "device 0 axis 0: 0.5000")
	assert.Contains(t, out, "**SimulationSystem:** 1 runs")
}
