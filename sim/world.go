// Package sim holds the simulation core: entities steered by analog axes,
// moving on a torus, and the World that owns them.
//
// Nothing in this package touches a window or a clock. Platform code feeds a
// World with Update, SetAxis and Render calls and supplies a Surface to draw on.
package sim

// World owns the ordered entity list and the input state.
// It is not safe for concurrent use.
type World struct {
	cfg      Config
	entities []Entity
	input    *InputState
}

// NewWorld creates a world with cfg and the given initial entities.
func NewWorld(cfg Config, entities ...Entity) *World {
	w := &World{
		cfg:      cfg,
		entities: make([]Entity, 0, len(entities)),
		input:    NewInputState(),
	}
	for _, e := range entities {
		w.Spawn(e)
	}
	return w
}

// Spawn appends e, wrapped into the torus, and returns its index.
func (w *World) Spawn(e Entity) int {
	e.Position = WrapVector(e.Position, w.cfg.WrapBound)
	w.entities = append(w.entities, e)
	return len(w.entities) - 1
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Entity returns a copy of the entity at index i.
func (w *World) Entity(i int) Entity {
	return w.entities[i]
}

// Entities returns a copy of all entities in update order.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Input returns the live input state.
func (w *World) Input() *InputState {
	return w.input
}

// Config returns the current configuration.
func (w *World) Config() Config {
	return w.cfg
}

// SetConfig replaces the configuration. Existing positions are folded into the
// new wrap bound so the torus invariant keeps holding.
func (w *World) SetConfig(cfg Config) {
	w.cfg = cfg
	for i := range w.entities {
		w.entities[i].Position = WrapVector(w.entities[i].Position, cfg.WrapBound)
	}
}

// SetAxis overwrites the reading for (device, axis). Values are not validated.
func (w *World) SetAxis(device, axis int, value float64) {
	w.input.Set(AxisKey{Device: device, Axis: axis}, value)
}

// Update advances every entity by dt seconds, in order.
func (w *World) Update(dt float64) {
	for i := range w.entities {
		w.entities[i].Update(dt, w.input, &w.cfg)
	}
}

// Render clears surface, draws the reference square and then every entity.
func (w *World) Render(surface Surface, vp Viewport) {
	surface.Clear(w.cfg.Background)

	if ref := w.cfg.ReferenceSquare; ref.Enabled {
		surface.FillSquare(Square{
			Center: Vector2{X: ref.X + ref.Size/2, Y: ref.Y + ref.Size/2},
			Side:   ref.Size,
		}, ref.Color)
	}

	for i := range w.entities {
		w.entities[i].Render(surface, vp, &w.cfg)
	}
}
