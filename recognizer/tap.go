package recognizer

// MaxTapThreshold is the default straight-line displacement below which a
// released single-finger gesture counts as a tap.
const MaxTapThreshold = 2

// tapTracker decides at release whether a gesture was a tap. It only resets on
// its own start and end hooks; finger-count transitions leave it alone.
type tapTracker struct {
	origin       Point
	tracking     bool
	displacement float64

	// pinched records a two-finger excursion since the last reset.
	pinched bool
}

// start begins tracking when exactly one contact touches down.
func (t *tapTracker) start(contacts []Point) {
	if len(contacts) != 1 {
		return
	}
	t.origin = contacts[0]
	t.tracking = true
	t.displacement = 0
	t.pinched = false
}

// move measures the distance from the origin to the first contact, not the
// path length. The first contact is measured during a pinch too, so a gesture
// whose anchor finger wandered off never counts as a tap.
func (t *tapTracker) move(contacts []Point) {
	if !t.tracking || len(contacts) == 0 {
		return
	}
	t.displacement = t.origin.Distance(contacts[0])
}

// end reports whether the finished gesture was a tap and clears the tracker.
// It does nothing while contacts remain down.
func (t *tapTracker) end(contacts []Point, threshold float64, allowAfterPinch bool) bool {
	if len(contacts) > 0 {
		return false
	}
	tap := t.tracking && t.displacement < threshold && (allowAfterPinch || !t.pinched)
	*t = tapTracker{}
	return tap
}
