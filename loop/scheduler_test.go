package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/drift/loop"
	"github.com/plus3/drift/sim"
)

type countingSystem struct {
	ExecuteCount int
	LastDT       float64
	LastIndex    uint64
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.LastDT = frame.DeltaTime
	s.LastIndex = frame.Index
}

type orderSystem struct {
	name  string
	order *[]string
}

func (s *orderSystem) Execute(frame *loop.Frame) {
	*s.order = append(*s.order, s.name)
}

func newWorld() *sim.World {
	return sim.NewWorld(sim.DefaultConfig(), sim.Entity{Color: sim.Red})
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler(newWorld())

		var order []string
		scheduler.Register(&orderSystem{name: "first", order: &order})
		scheduler.Register(&orderSystem{name: "second", order: &order})

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		want := []string{"first", "second", "first", "second"}
		if len(order) != len(want) {
			t.Fatalf("expected %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("expected %v, got %v", want, order)
				break
			}
		}
	})

	t.Run("frame carries delta time and index", func(t *testing.T) {
		scheduler := loop.NewScheduler(newWorld())
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(0.25)
		scheduler.Once(0.5)

		if counter.ExecuteCount != 2 {
			t.Errorf("expected 2 executions, got %d", counter.ExecuteCount)
		}
		if counter.LastDT != 0.5 {
			t.Errorf("expected dt=0.5, got %f", counter.LastDT)
		}
		if counter.LastIndex != 1 {
			t.Errorf("expected frame index 1, got %d", counter.LastIndex)
		}
	})

	t.Run("simulation system advances the world", func(t *testing.T) {
		world := newWorld()
		scheduler := loop.NewScheduler(world)
		scheduler.Register(loop.SimulationSystem{})

		scheduler.Once(1.0)

		if x := world.Entity(0).Position.X; x < 0.3999 || x > 0.4001 {
			t.Errorf("expected x=0.4, got %f", x)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(newWorld())
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler.Run did not return after cancel")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected at least one execution")
		}
	})

	t.Run("run uses a fixed step", func(t *testing.T) {
		scheduler := loop.NewScheduler(newWorld())
		scheduler.Register(loop.SimulationSystem{})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()
		scheduler.Run(ctx, 2*time.Millisecond)

		stats := scheduler.GetStats()
		if stats.Frames == 0 {
			t.Fatal("expected at least one frame")
		}
		want := float64(stats.Frames) * 0.002
		if diff := stats.SimulatedTime - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("expected simulated time %f for %d frames, got %f", want, stats.Frames, stats.SimulatedTime)
		}
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler(newWorld())
	scheduler.Register(loop.SimulationSystem{})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {}))

	stats := scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Fatalf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any run, got %v", stats.Systems[0].MinDuration)
	}

	for i := 0; i < 10; i++ {
		scheduler.Once(0.1)
	}

	stats = scheduler.GetStats()
	if stats.Frames != 10 {
		t.Errorf("expected 10 frames, got %d", stats.Frames)
	}
	if stats.TotalExecutions != 20 {
		t.Errorf("expected 20 executions, got %d", stats.TotalExecutions)
	}
	if stats.SimulatedTime < 0.999 || stats.SimulatedTime > 1.001 {
		t.Errorf("expected 1s simulated, got %f", stats.SimulatedTime)
	}
	if stats.Systems[0].Name != "SimulationSystem" {
		t.Errorf("expected SimulationSystem, got %q", stats.Systems[0].Name)
	}
	if stats.Systems[1].Name != "SystemFunc" {
		t.Errorf("expected SystemFunc, got %q", stats.Systems[1].Name)
	}
	for _, s := range stats.Systems {
		if s.ExecutionCount != 10 {
			t.Errorf("%s: expected 10 executions, got %d", s.Name, s.ExecutionCount)
		}
		if s.MinDuration > s.MaxDuration {
			t.Errorf("%s: min %v > max %v", s.Name, s.MinDuration, s.MaxDuration)
		}
	}
}
