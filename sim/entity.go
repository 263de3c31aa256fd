package sim

// Entity is a single steerable square.
type Entity struct {
	Position Vector2 `yaml:"position"`
	// Rotation is the heading in radians. It is never normalised.
	Rotation float64 `yaml:"rotation"`
	Color    Color   `yaml:"color"`
}

// Update advances e by dt seconds. The steering axis, when present in input,
// turns the entity; it then moves forward along its heading and wraps around
// the torus.
func (e *Entity) Update(dt float64, input *InputState, cfg *Config) {
	if turn, ok := input.Axis(cfg.Steering); ok {
		e.Rotation += turn * dt * cfg.RotationSpeed
	}

	step := Heading(e.Rotation).Scale(dt * cfg.Speed)
	e.Position = WrapVector(e.Position.Add(step), cfg.WrapBound)
}

// Placement returns the screen-space square for e, or false when vp is empty.
func (e *Entity) Placement(vp Viewport, cfg *Config) (Square, bool) {
	if vp.Empty() {
		return Square{}, false
	}

	scale := vp.Scale(cfg.ViewportNormalization)
	return Square{
		Center:   vp.Center().Add(e.Position.Scale(scale)),
		Side:     2 * scale * cfg.EntityRadius,
		Rotation: e.Rotation,
	}, true
}

// Render draws e onto surface.
func (e *Entity) Render(surface Surface, vp Viewport, cfg *Config) {
	sq, ok := e.Placement(vp, cfg)
	if !ok {
		return
	}
	surface.FillSquare(sq, e.Color)
}
