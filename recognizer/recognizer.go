package recognizer

import (
	"context"
	"log/slog"

	"github.com/osuushi/gesture/dbg"
)

// Host is the element being manipulated. Positions passed to Translate and
// angles/scales passed to RotateAndScale are absolute, already folded with the
// state captured at the start of the segment.
type Host interface {
	// State returns the element's current position, scale and angle.
	State() State

	// SetActive is called with true when a gesture begins and false when it
	// ends, before OnGestureEnd fires.
	SetActive(active bool)

	// Translate moves the element to (x, y).
	Translate(x, y float64)

	// RotateAndScale sets the element's angle and scale.
	RotateAndScale(angle, scale float64)

	// Bounds measures the element. It is queried on every start frame so the
	// host can clamp later moves against it.
	Bounds() Rect
}

// Config configures recognizer behavior.
type Config struct {
	// TapThreshold is the displacement below which a release is a tap.
	// Non-positive values fall back to MaxTapThreshold.
	TapThreshold float64

	// AllowTapAfterPinch lets a gesture that passed through two-finger mode
	// still report a tap when it ends close to where it began.
	AllowTapAfterPinch bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TapThreshold: MaxTapThreshold,
	}
}

// Recognizer turns touch frames into manipulation calls on a Host.
//
// A Recognizer is driven from a single goroutine: each frame is fully
// processed, host callbacks included, before Handle returns. It is not safe
// for concurrent use.
type Recognizer struct {
	// OnGestureEnd, if set, is called once all contacts have lifted. modified
	// reports whether any move was applied during the gesture.
	OnGestureEnd func(modified bool)

	// OnTap, if set, is called when a gesture ends without significant
	// movement.
	OnTap func()

	host   Host
	config Config

	phase     Phase
	active    bool
	mark      Mark
	bounds    Rect
	transform transform
	tap       tapTracker

	// seq numbers gestures for trace logging.
	seq uint64
}

// New creates a recognizer driving host.
func New(host Host, config Config) *Recognizer {
	if config.TapThreshold <= 0 {
		config.TapThreshold = MaxTapThreshold
	}
	return &Recognizer{
		host:   host,
		config: config,
		mark:   snapshot(host.State()),
	}
}

// Handle processes a single frame.
func (r *Recognizer) Handle(frame Frame) {
	before := r.phase
	seq := r.seq

	switch frame.Kind {
	case Start:
		r.start(frame.Contacts)
	case Move:
		r.move(frame.Contacts)
	case End:
		r.end(frame.Contacts)
	}

	r.trace(frame, before, seq)
}

// HandleAll processes frames in order.
func (r *Recognizer) HandleAll(frames []Frame) {
	for _, frame := range frames {
		r.Handle(frame)
	}
}

// Phase returns the current finger-count state.
func (r *Recognizer) Phase() Phase {
	return r.phase
}

// Active reports whether a gesture is in progress.
func (r *Recognizer) Active() bool {
	return r.active
}

// Modified reports whether the current gesture has applied any move.
func (r *Recognizer) Modified() bool {
	return r.transform.modified
}

// Mark returns the snapshot deltas are currently computed against.
func (r *Recognizer) Mark() Mark {
	return r.mark
}

// Bounds returns the geometry measured at the most recent start frame or
// return to one finger.
func (r *Recognizer) Bounds() Rect {
	return r.bounds
}

func (r *Recognizer) start(contacts []Point) {
	if len(contacts) == 0 {
		return
	}
	r.bounds = r.host.Bounds()
	r.tap.start(contacts)

	if len(contacts) == 1 {
		r.enterOneFinger(contacts[0])
		return
	}
	r.enterTwoFinger(contacts)
}

// enterOneFinger anchors a single contact. It is also the path taken when the
// second finger lifts, so the pan continues from wherever rotation and scale
// left the element.
func (r *Recognizer) enterOneFinger(p Point) {
	r.mark = snapshot(r.host.State())
	r.transform = transform{
		modified: r.transform.modified,
		anchored: true,
		x1:       p.X,
		y1:       p.Y,
	}
	r.phase = OneFinger
	r.activate()
}

// enterTwoFinger captures the two-finger baseline. Both a two-contact start
// and a one-finger move that gains a contact come through here.
func (r *Recognizer) enterTwoFinger(contacts []Point) {
	if len(contacts) < 2 {
		return
	}
	r.mark = snapshot(r.host.State())
	r.captureBaseline(contacts)
	r.phase = TwoFinger
	r.tap.pinched = true
	r.activate()
}

func (r *Recognizer) captureBaseline(contacts []Point) {
	distance, angle := pairMetrics(contacts)
	r.transform = transform{
		modified: r.transform.modified,
		anchored: true,
		x1:       contacts[0].X,
		y1:       contacts[0].Y,
		paired:   true,
		x2:       contacts[1].X,
		y2:       contacts[1].Y,
		distance: distance,
		angle:    angle,
	}
}

func (r *Recognizer) activate() {
	if r.active {
		return
	}
	r.active = true
	r.host.SetActive(true)
}

func (r *Recognizer) move(contacts []Point) {
	r.tap.move(contacts)

	switch r.phase {
	case OneFinger:
		if !r.transform.anchored || len(contacts) == 0 {
			return
		}
		if len(contacts) > 1 {
			r.enterTwoFinger(contacts)
			return
		}
		r.pan(contacts[0])
	case TwoFinger:
		if !r.transform.paired || len(contacts) < 2 {
			return
		}
		r.rotateAndScale(contacts)
	}
}

func (r *Recognizer) pan(p Point) {
	dx := p.X - r.transform.x1
	dy := p.Y - r.transform.y1
	r.transform.modified = true
	r.host.Translate(r.mark.X+dx, r.mark.Y+dy)
}

func (r *Recognizer) rotateAndScale(contacts []Point) {
	// Two coincident contacts give no usable baseline; wait for them to
	// separate.
	if Equal(r.transform.distance, 0) {
		r.captureBaseline(contacts)
		return
	}
	distance, angle := pairMetrics(contacts)
	deltaAngle := angle - r.transform.angle + r.mark.Angle
	scale := distance / r.transform.distance * r.mark.Scale
	r.transform.modified = true
	r.host.RotateAndScale(deltaAngle, scale)
}

func (r *Recognizer) end(contacts []Point) {
	if r.phase == Idle {
		return
	}
	switch len(contacts) {
	case 0:
		r.finish(contacts)
	case 1:
		// The pinch may have changed the element's size, so measure again
		// as a fresh start would.
		r.bounds = r.host.Bounds()
		r.enterOneFinger(contacts[0])
	}
}

// finish resets all state before notifying the host, so callbacks observe an
// idle, inactive recognizer.
func (r *Recognizer) finish(contacts []Point) {
	r.mark = snapshot(r.host.State())
	modified := r.transform.modified
	r.transform = transform{}
	r.phase = Idle
	r.seq++
	tapped := r.tap.end(contacts, r.config.TapThreshold, r.config.AllowTapAfterPinch)

	r.active = false
	r.host.SetActive(false)

	if tapped && r.OnTap != nil {
		r.OnTap()
	}
	if r.OnGestureEnd != nil {
		r.OnGestureEnd(modified)
	}
}

type gestureKey struct {
	r   *Recognizer
	seq uint64
}

func (r *Recognizer) trace(frame Frame, before Phase, seq uint64) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("touch frame",
		slog.String("gesture", dbg.Name(gestureKey{r, seq})),
		slog.String("kind", frame.Kind.String()),
		slog.Int("contacts", len(frame.Contacts)),
		slog.String("from", before.String()),
		slog.String("to", r.phase.String()),
		slog.Bool("modified", r.transform.modified),
	)
}
