// Multi-touch manipulation gestures for Go.
//
// This package turns a stream of touch frames into pan, rotate, scale and tap
// calls on a single element. One finger pans; two fingers rotate and scale
// around their initial baseline; a release without significant movement is a
// tap. Finger-count changes mid-gesture are handled without the element
// jumping.
//
// Feed normalized frames to a Recognizer from one goroutine:
//
//	r := gesture.New(host)
//	r.OnTap = func() { ... }
//	r.Handle(gesture.Frame{Kind: gesture.Start, Contacts: []gesture.Point{{X: 10, Y: 10}}})
//
// See the recognizer package for the full state machine.
package gesture

import (
	"log/slog"

	"github.com/osuushi/gesture/internal/trace"
	"github.com/osuushi/gesture/recognizer"
)

type Point = recognizer.Point
type Kind = recognizer.Kind
type Frame = recognizer.Frame
type State = recognizer.State
type Mark = recognizer.Mark
type Rect = recognizer.Rect
type Phase = recognizer.Phase
type Host = recognizer.Host
type Config = recognizer.Config
type Recognizer = recognizer.Recognizer
type Trace = trace.Trace

const (
	Start = recognizer.Start
	Move  = recognizer.Move
	End   = recognizer.End
)

// Create a recognizer for host with the default configuration.
func New(host Host) *Recognizer {
	return recognizer.New(host, recognizer.DefaultConfig())
}

// Turn on frame tracing. Pass nil to turn it back off.
func SetLogger(l *slog.Logger) {
	recognizer.SetLogger(l)
}

// Load a recorded trace from a .yaml, .yml or .svg file.
func LoadTrace(path string) (*Trace, error) {
	return trace.Load(path)
}
