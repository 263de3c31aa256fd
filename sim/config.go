package sim

// Config holds every tuning constant of the simulation and its rendering.
type Config struct {
	// Speed is the forward speed in world units per second.
	Speed float64 `yaml:"speed"`
	// RotationSpeed is the turn rate in radians per second at full axis deflection.
	RotationSpeed float64 `yaml:"rotation_speed"`
	// WrapBound is the half-size of the torus. Positions stay in [-WrapBound, WrapBound).
	WrapBound float64 `yaml:"wrap_bound"`
	// ViewportNormalization is how many world units the shorter viewport side spans.
	ViewportNormalization float64 `yaml:"viewport_normalization"`
	// EntityRadius is half the side of an entity square in world units.
	EntityRadius float64 `yaml:"entity_radius"`

	// Steering selects the analog axis that turns entities.
	Steering AxisKey `yaml:"steering"`

	Background      Color           `yaml:"background"`
	ReferenceSquare ReferenceSquare `yaml:"reference_square"`
}

// ReferenceSquare is a fixed, screen-space square drawn before any entity.
type ReferenceSquare struct {
	Enabled bool    `yaml:"enabled"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Size    float64 `yaml:"size"`
	Color   Color   `yaml:"color"`
}

// DefaultConfig returns the controller-driven tuning.
func DefaultConfig() Config {
	return Config{
		Speed:                 0.4,
		RotationSpeed:         1.5,
		WrapBound:             1.05,
		ViewportNormalization: 2,
		EntityRadius:          0.1,
		Steering:              AxisKey{Device: 0, Axis: 0},
		Background:            White,
		ReferenceSquare: ReferenceSquare{
			Enabled: true,
			X:       0,
			Y:       0,
			Size:    50,
			Color:   Red,
		},
	}
}
