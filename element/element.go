// Package element provides a reference host for the gesture recognizer: a
// rectangle that can be moved, rotated and scaled, optionally kept inside a
// container.
package element

import (
	"math"

	"github.com/osuushi/gesture/recognizer"
)

// Config describes the element's size and limits.
type Config struct {
	// Width and Height are the unscaled size of the element.
	Width, Height float64

	// Container bounds translation. An empty container leaves the element
	// free to move anywhere.
	Container recognizer.Rect

	// MinScale and MaxScale clamp scaling when positive.
	MinScale, MaxScale float64
}

// Element is a manipulable rectangle centered on its (X, Y) position.
type Element struct {
	config Config
	state  recognizer.State
	active bool

	// measured is the bounding box captured at the start of the current
	// gesture, used for clamping.
	measured recognizer.Rect

	// Taps counts reported taps.
	Taps int
	// Commits counts gestures that ended with a modification.
	Commits int
}

// New creates an element at the given initial state. A zero scale is treated
// as 1.
func New(config Config, initial recognizer.State) *Element {
	if initial.Scale == 0 {
		initial.Scale = 1
	}
	e := &Element{config: config, state: initial}
	e.measured = e.measure()
	return e
}

// Attach wires the element's tap and gesture-end handling into r.
func (e *Element) Attach(r *recognizer.Recognizer) {
	r.OnTap = e.Tap
	r.OnGestureEnd = e.EndGesture
}

// Config returns the element's configuration.
func (e *Element) Config() Config {
	return e.config
}

func (e *Element) State() recognizer.State {
	return e.state
}

func (e *Element) SetActive(active bool) {
	e.active = active
}

// Active reports whether a gesture is manipulating the element.
func (e *Element) Active() bool {
	return e.active
}

// Bounds measures the element and remembers the result for clamping until the
// next measurement.
func (e *Element) Bounds() recognizer.Rect {
	e.measured = e.measure()
	return e.measured
}

// Translate moves the element's center, keeping the measured box inside the
// container.
func (e *Element) Translate(x, y float64) {
	c := e.config.Container
	if !c.Empty() {
		x = clampAxis(x, e.measured.Width/2, c.X, c.X+c.Width)
		y = clampAxis(y, e.measured.Height/2, c.Y, c.Y+c.Height)
	}
	e.state.X, e.state.Y = x, y
}

// RotateAndScale sets the absolute angle and scale.
func (e *Element) RotateAndScale(angle, scale float64) {
	if e.config.MinScale > 0 {
		scale = math.Max(scale, e.config.MinScale)
	}
	if e.config.MaxScale > 0 {
		scale = math.Min(scale, e.config.MaxScale)
	}
	e.state.Angle, e.state.Scale = angle, scale
}

// Tap records a tap.
func (e *Element) Tap() {
	e.Taps++
}

// EndGesture records the end of a gesture. Only modified gestures count as
// commits.
func (e *Element) EndGesture(modified bool) {
	if modified {
		e.Commits++
	}
}

// Corners returns the element's corners in page coordinates, clockwise from
// the top left of the unrotated rectangle.
func (e *Element) Corners() [4]recognizer.Point {
	return Corners(e.config.Width, e.config.Height, e.state)
}

// Corners returns the corners of a width × height rectangle placed at state.
func Corners(width, height float64, state recognizer.State) [4]recognizer.Point {
	hw := width * state.Scale / 2
	hh := height * state.Scale / 2
	sin, cos := math.Sincos(state.Angle)
	local := [4]recognizer.Point{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	var corners [4]recognizer.Point
	for i, p := range local {
		corners[i] = recognizer.Point{
			X: state.X + p.X*cos - p.Y*sin,
			Y: state.Y + p.X*sin + p.Y*cos,
		}
	}
	return corners
}

func (e *Element) measure() recognizer.Rect {
	corners := e.Corners()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return recognizer.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Clamp a center coordinate so [v-half, v+half] fits in [lo, hi]. If it cannot
// fit, center it.
func clampAxis(v, half, lo, hi float64) float64 {
	if hi-lo < 2*half {
		return (lo + hi) / 2
	}
	return math.Max(lo+half, math.Min(v, hi-half))
}
