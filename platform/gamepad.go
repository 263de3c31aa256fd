package platform

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/drift/sim"
)

// GamepadReader exposes the raw analog state of connected controllers.
type GamepadReader interface {
	GamepadIDs() []int
	AxisCount(id int) int
	AxisValue(id, axis int) float64
}

type ebitenGamepads struct{}

// EbitenGamepads reads controllers through Ebiten. Only valid inside the game loop.
func EbitenGamepads() GamepadReader {
	return ebitenGamepads{}
}

func (ebitenGamepads) GamepadIDs() []int {
	ids := ebiten.GamepadIDs()
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func (ebitenGamepads) AxisCount(id int) int {
	return ebiten.GamepadAxisCount(ebiten.GamepadID(id))
}

func (ebitenGamepads) AxisValue(id, axis int) float64 {
	return ebiten.GamepadAxis(ebiten.GamepadID(id), axis)
}

// GamepadPoller turns polled axis state into controller-axis events, emitting
// one only when an axis value changes. An axis seen for the first time is
// reported once it leaves zero.
type GamepadPoller struct {
	reader GamepadReader
	last   map[sim.AxisKey]float64
}

func NewGamepadPoller(reader GamepadReader) *GamepadPoller {
	return &GamepadPoller{
		reader: reader,
		last:   make(map[sim.AxisKey]float64),
	}
}

// Poll appends an event for every changed axis to dst, ordered by device then axis.
func (p *GamepadPoller) Poll(dst []sim.Event) []sim.Event {
	ids := p.reader.GamepadIDs()
	slices.Sort(ids)

	for _, id := range ids {
		count := p.reader.AxisCount(id)
		for axis := 0; axis < count; axis++ {
			key := sim.AxisKey{Device: id, Axis: axis}
			value := p.reader.AxisValue(id, axis)

			prev, seen := p.last[key]
			if seen && prev == value {
				continue
			}
			if !seen && value == 0 {
				continue
			}

			p.last[key] = value
			dst = append(dst, sim.ControllerAxisEvent{Device: id, Axis: axis, Position: value})
		}
	}
	return dst
}
