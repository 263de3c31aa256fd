package sim

// DrawKind tells the two Surface operations apart in a recording.
type DrawKind int

const (
	DrawClear DrawKind = iota
	DrawSquare
)

func (k DrawKind) String() string {
	switch k {
	case DrawClear:
		return "clear"
	case DrawSquare:
		return "square"
	default:
		return "unknown"
	}
}

// DrawCall is one recorded Surface operation.
type DrawCall struct {
	Kind   DrawKind
	Square Square
	Color  Color
}

// Recorder is a Surface that keeps every call made to it.
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) Clear(c Color) {
	r.Calls = append(r.Calls, DrawCall{Kind: DrawClear, Color: c})
}

func (r *Recorder) FillSquare(sq Square, c Color) {
	r.Calls = append(r.Calls, DrawCall{Kind: DrawSquare, Square: sq, Color: c})
}

// Squares returns only the FillSquare calls.
func (r *Recorder) Squares() []DrawCall {
	var out []DrawCall
	for _, call := range r.Calls {
		if call.Kind == DrawSquare {
			out = append(out, call)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
