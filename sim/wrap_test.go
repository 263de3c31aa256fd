package sim_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/plus3/drift/sim"
	"github.com/stretchr/testify/assert"
)

// foldWrap is the iterative folding the constant-time Wrap must agree with.
func foldWrap(v, bound float64) float64 {
	for v >= bound {
		v -= 2 * bound
	}
	for v < -bound {
		v += 2 * bound
	}
	return v
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		bound float64
		want  float64
	}{
		{"inside", 0.5, 1.05, 0.5},
		{"zero", 0, 1.05, 0},
		{"single wrap positive", 1.3, 1.05, -0.8},
		{"single wrap negative", -1.3, 1.05, 0.8},
		{"upper edge folds to lower edge", 1.05, 1.05, -1.05},
		{"lower edge stays", -1.05, 1.05, -1.05},
		{"several wraps", 1.3 + 4*2.1, 1.05, -0.8},
		{"earlier bound", 1.5, 1.2, -0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sim.Wrap(tt.v, tt.bound), 1e-9)
		})
	}
}

func TestWrapMatchesFolding(t *testing.T) {
	for _, bound := range []float64{0.5, 1.05, 1.2, 3} {
		for v := -20.0; v <= 20.0; v += 0.173 {
			t.Run(fmt.Sprintf("bound=%v,v=%.3f", bound, v), func(t *testing.T) {
				assert.InDelta(t, foldWrap(v, bound), sim.Wrap(v, bound), 1e-9)
			})
		}
	}
}

func TestWrapStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		bound := 0.01 + rng.Float64()*10
		v := (rng.Float64() - 0.5) * math.Pow(10, float64(rng.IntN(12)))

		got := sim.Wrap(v, bound)
		assert.GreaterOrEqual(t, got, -bound, "v=%v bound=%v", v, bound)
		assert.Less(t, got, bound, "v=%v bound=%v", v, bound)
	}
}

func TestWrapVector(t *testing.T) {
	got := sim.WrapVector(sim.Vector2{X: 1.3, Y: -1.3}, 1.05)
	assert.InDelta(t, -0.8, got.X, 1e-9)
	assert.InDelta(t, 0.8, got.Y, 1e-9)
}
