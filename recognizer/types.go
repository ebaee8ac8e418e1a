package recognizer

// Point is a single touch or pointer contact in page coordinates.
type Point struct {
	X float64
	Y float64
}

// Kind is the type of a touch frame.
type Kind uint8

const (
	// Start is sent when one or more contacts touch down.
	Start Kind = iota
	// Move is sent when active contacts move.
	Move
	// End is sent when contacts lift. The frame lists the contacts that
	// remain down.
	End
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Move:
		return "move"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Frame is one normalized touch event. Only the first two contacts are ever
// read.
type Frame struct {
	Kind     Kind
	Contacts []Point
}

// State is the positional state of the manipulated element. Angle is in
// radians.
type State struct {
	X     float64
	Y     float64
	Scale float64
	Angle float64
}

// Mark is a snapshot of host State taken at the start of a gesture segment.
// Deltas are computed relative to it.
type Mark State

// snapshot copies the host state into a new Mark.
func snapshot(s State) Mark {
	return Mark{X: s.X, Y: s.Y, Scale: s.Scale, Angle: s.Angle}
}

// Rect is the bounding geometry reported by the host. The recognizer holds on
// to it for the host's benefit but never interprets it.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Phase is the recognizer's finger-count state.
type Phase uint8

const (
	// Idle means no gesture is in progress.
	Idle Phase = iota
	// OneFinger means a single contact is panning.
	OneFinger
	// TwoFinger means two contacts are rotating and scaling.
	TwoFinger
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case OneFinger:
		return "one-finger"
	case TwoFinger:
		return "two-finger"
	default:
		return "unknown"
	}
}

// transform is the working state of the current gesture segment. The zero
// value is the empty state.
type transform struct {
	modified bool

	// anchored is set once x1, y1 hold the first finger's position.
	anchored bool
	x1, y1   float64

	// paired is set once the two-finger baseline is captured.
	paired   bool
	x2, y2   float64
	distance float64
	angle    float64
}
