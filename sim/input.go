package sim

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// AxisKey identifies one analog channel of one input device.
type AxisKey struct {
	Device int `yaml:"device"`
	Axis   int `yaml:"axis"`
}

func (k AxisKey) pack() uint64 {
	return uint64(uint32(k.Device))<<32 | uint64(uint32(k.Axis))
}

func unpackAxisKey(v uint64) AxisKey {
	return AxisKey{Device: int(int32(v >> 32)), Axis: int(int32(uint32(v)))}
}

// AxisValue is a snapshot of a single InputState entry.
type AxisValue struct {
	Key   AxisKey
	Value float64
}

// InputState maps each reported axis to the last value seen for it.
// Entries are overwritten, never removed.
type InputState struct {
	axes *intmap.Map[uint64, float64]
}

// NewInputState returns an empty InputState.
func NewInputState() *InputState {
	return &InputState{axes: intmap.New[uint64, float64](8)}
}

// Set records value as the latest reading for key. Values are stored as given.
func (s *InputState) Set(key AxisKey, value float64) {
	s.axes.Put(key.pack(), value)
}

// Axis returns the latest reading for key and whether one was ever reported.
func (s *InputState) Axis(key AxisKey) (float64, bool) {
	if s == nil {
		return 0, false
	}
	return s.axes.Get(key.pack())
}

// Len returns the number of axes ever reported.
func (s *InputState) Len() int {
	if s == nil {
		return 0
	}
	return s.axes.Len()
}

// Axes returns every entry ordered by device, then axis.
func (s *InputState) Axes() []AxisValue {
	if s == nil {
		return nil
	}

	values := make([]AxisValue, 0, s.axes.Len())
	s.axes.ForEach(func(k uint64, v float64) bool {
		values = append(values, AxisValue{Key: unpackAxisKey(k), Value: v})
		return true
	})

	slices.SortFunc(values, func(a, b AxisValue) int {
		if a.Key.Device != b.Key.Device {
			return a.Key.Device - b.Key.Device
		}
		return a.Key.Axis - b.Key.Axis
	})
	return values
}
