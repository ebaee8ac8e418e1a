package recognizer

import "fmt"

// recordingHost applies every call to its own state and keeps an ordered log
// of what happened.
type recordingHost struct {
	state  State
	active bool
	bounds Rect

	log          []string
	translations []Point
	rotations    []State
	boundsCalls  int
}

func newRecordingHost(state State) *recordingHost {
	return &recordingHost{
		state:  state,
		bounds: Rect{X: state.X - 5, Y: state.Y - 5, Width: 10, Height: 10},
	}
}

func (h *recordingHost) State() State { return h.state }

func (h *recordingHost) SetActive(active bool) {
	h.active = active
	h.log = append(h.log, fmt.Sprintf("active:%v", active))
}

func (h *recordingHost) Translate(x, y float64) {
	h.state.X, h.state.Y = x, y
	h.translations = append(h.translations, Point{x, y})
	h.log = append(h.log, "translate")
}

func (h *recordingHost) RotateAndScale(angle, scale float64) {
	h.state.Angle, h.state.Scale = angle, scale
	h.rotations = append(h.rotations, State{Angle: angle, Scale: scale})
	h.log = append(h.log, "rotate")
}

func (h *recordingHost) Bounds() Rect {
	h.boundsCalls++
	return h.bounds
}

// Frame helpers

func start(points ...Point) Frame { return Frame{Kind: Start, Contacts: points} }
func move(points ...Point) Frame  { return Frame{Kind: Move, Contacts: points} }
func end(points ...Point) Frame   { return Frame{Kind: End, Contacts: points} }

func pt(x, y float64) Point { return Point{X: x, Y: y} }
