package loop

import (
	"errors"
	"fmt"
	"os"

	"github.com/plus3/drift/sim"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("invalid script")

const defaultScriptDT = 1.0 / 60.0

// Script is a recorded or hand-written input sequence for headless replay.
//
//	dt: 0.0166
//	render_every: 10
//	viewport: {width: 400, height: 400}
//	frames:
//	  - repeat: 60
//	  - axes: [{device: 0, axis: 0, value: 0.5}]
//	    repeat: 120
type Script struct {
	DT          float64        `yaml:"dt"`
	RenderEvery int            `yaml:"render_every"`
	Viewport    ScriptViewport `yaml:"viewport"`
	Frames      []ScriptFrame  `yaml:"frames"`
}

type ScriptViewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScriptFrame is a run of update frames. Axes are reported before the first one.
type ScriptFrame struct {
	Repeat int          `yaml:"repeat"`
	DT     float64      `yaml:"dt"`
	Axes   []ScriptAxis `yaml:"axes"`
}

type ScriptAxis struct {
	Device int     `yaml:"device"`
	Axis   int     `yaml:"axis"`
	Value  float64 `yaml:"value"`
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads a script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Script) normalize() error {
	if s.DT == 0 {
		s.DT = defaultScriptDT
	}
	if s.DT < 0 {
		return fmt.Errorf("%w: dt must be positive, got %v", ErrInvalidScript, s.DT)
	}
	if s.RenderEvery < 0 {
		return fmt.Errorf("%w: render_every must not be negative", ErrInvalidScript)
	}
	if s.Viewport.Width < 0 || s.Viewport.Height < 0 {
		return fmt.Errorf("%w: negative viewport", ErrInvalidScript)
	}

	for i := range s.Frames {
		f := &s.Frames[i]
		if f.Repeat < 0 {
			return fmt.Errorf("%w: frame %d: repeat must not be negative", ErrInvalidScript, i)
		}
		if f.DT < 0 {
			return fmt.Errorf("%w: frame %d: dt must be positive", ErrInvalidScript, i)
		}
		if f.Repeat == 0 {
			f.Repeat = 1
		}
		if f.DT == 0 {
			f.DT = s.DT
		}
	}
	return nil
}

// UpdateCount returns the number of update events the script produces.
func (s *Script) UpdateCount() int {
	n := 0
	for _, f := range s.Frames {
		n += f.Repeat
	}
	return n
}

// Events expands the script into the event stream a platform would produce.
func (s *Script) Events() []sim.Event {
	vp := sim.Viewport{Width: s.Viewport.Width, Height: s.Viewport.Height}
	events := make([]sim.Event, 0, s.UpdateCount()*2)

	updates := 0
	for _, f := range s.Frames {
		for _, a := range f.Axes {
			events = append(events, sim.ControllerAxisEvent{Device: a.Device, Axis: a.Axis, Position: a.Value})
		}
		for range f.Repeat {
			events = append(events, sim.UpdateEvent{DT: f.DT})
			updates++
			if s.RenderEvery > 0 && updates%s.RenderEvery == 0 {
				events = append(events, sim.RenderEvent{Viewport: vp})
			}
		}
	}
	return events
}

// Source returns an EventSource over the expanded script.
func (s *Script) Source() *SliceSource {
	return NewSliceSource(s.Events()...)
}
