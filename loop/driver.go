// Package loop drives a sim.World from a stream of frame events.
//
// A Driver routes render, update and controller-axis events to the world; the
// update path goes through a Scheduler so additional systems (debug overlays,
// input pollers) can run alongside the simulation with per-system timings.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/plus3/drift/sim"
)

// EventSource yields frame events one at a time. It returns io.EOF once the
// stream is exhausted.
type EventSource interface {
	Next(ctx context.Context) (sim.Event, error)
}

// EventCounts tallies the events a Driver has handled.
type EventCounts struct {
	Render uint64
	Update uint64
	Axis   uint64
}

// Driver dispatches frame events to a world. It is not safe for concurrent use.
type Driver struct {
	scheduler *Scheduler
	logger    *log.Logger
	counts    EventCounts
}

// NewDriver creates a driver around scheduler. A nil logger discards output.
func NewDriver(scheduler *Scheduler, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		scheduler: scheduler,
		logger:    logger,
	}
}

// Scheduler returns the scheduler used for update events.
func (d *Driver) Scheduler() *Scheduler {
	return d.scheduler
}

// Counts returns how many events of each kind were handled.
func (d *Driver) Counts() EventCounts {
	return d.counts
}

// Handle dispatches a single event. surface is only used by render events.
func (d *Driver) Handle(ev sim.Event, surface sim.Surface) {
	world := d.scheduler.World()

	switch ev := ev.(type) {
	case sim.RenderEvent:
		d.counts.Render++
		if surface == nil {
			return
		}
		world.Render(surface, ev.Viewport)

	case sim.UpdateEvent:
		d.counts.Update++
		d.scheduler.Once(ev.DT)

	case sim.ControllerAxisEvent:
		d.counts.Axis++
		world.SetAxis(ev.Device, ev.Axis, ev.Position)
		d.logger.Debug("axis moved", "device", ev.Device, "axis", ev.Axis, "value", ev.Position)

	default:
		d.logger.Warn("unhandled event", "type", fmt.Sprintf("%T", ev))
	}
}

// Pump handles events from src until it reports io.EOF or ctx is done.
func (d *Driver) Pump(ctx context.Context, src EventSource, surface sim.Surface) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading event: %w", err)
		}

		d.Handle(ev, surface)
	}
}

// SliceSource is an EventSource over a fixed list of events.
type SliceSource struct {
	events []sim.Event
	pos    int
}

// NewSliceSource returns a source yielding events in order.
func NewSliceSource(events ...sim.Event) *SliceSource {
	return &SliceSource{events: events}
}

func (s *SliceSource) Next(ctx context.Context) (sim.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.events) {
		return nil, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// Remaining returns the number of events not yet read.
func (s *SliceSource) Remaining() int {
	return len(s.events) - s.pos
}
