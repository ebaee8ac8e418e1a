package trace

import (
	"io"

	"github.com/osuushi/gesture/element"
	"github.com/osuushi/gesture/recognizer"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A YAML trace looks like:
//
//	name: pinch
//	element: {x: 100, y: 100, width: 40, height: 20}
//	container: {x: 0, y: 0, width: 300, height: 200}
//	frames:
//	  - start: [[90, 100]]
//	  - start: [[90, 100], [110, 100]]
//	  - move: [[90, 100], [130, 100]]
//	  - end: [[90, 100]]
//	  - end: []
//
// Each frame has exactly one of start, move or end, listing the contacts that
// are down after the event.

type yamlRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type yamlElement struct {
	yamlRect `yaml:",inline"`
	Scale    float64 `yaml:"scale"`
	Angle    float64 `yaml:"angle"`
	MinScale float64 `yaml:"minScale"`
	MaxScale float64 `yaml:"maxScale"`
}

type yamlTrace struct {
	Name      string                   `yaml:"name"`
	Element   yamlElement              `yaml:"element"`
	Container *yamlRect                `yaml:"container"`
	Frames    []map[string][][]float64 `yaml:"frames"`
}

var yamlKinds = map[string]recognizer.Kind{
	"start": recognizer.Start,
	"move":  recognizer.Move,
	"end":   recognizer.End,
}

// DecodeYAML reads a YAML trace.
func DecodeYAML(r io.Reader) (result *Trace, err error) {
	defer func() {
		recoveredErr := HandleTracePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	var raw yamlTrace
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	return raw.toTrace(), nil
}

func (raw *yamlTrace) toTrace() *Trace {
	el := raw.Element
	if el.Width <= 0 || el.Height <= 0 {
		fatalf("element must have a positive size, got %vx%v", el.Width, el.Height)
	}
	t := &Trace{
		Name: raw.Name,
		Element: element.Config{
			Width:    el.Width,
			Height:   el.Height,
			MinScale: el.MinScale,
			MaxScale: el.MaxScale,
		},
		Initial: recognizer.State{X: el.X, Y: el.Y, Scale: el.Scale, Angle: el.Angle},
		Frames:  make([]recognizer.Frame, 0, len(raw.Frames)),
	}
	if t.Initial.Scale == 0 {
		t.Initial.Scale = 1
	}
	if c := raw.Container; c != nil {
		t.Element.Container = recognizer.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
	}

	for i, frame := range raw.Frames {
		t.Frames = append(t.Frames, parseYAMLFrame(i, frame))
	}
	return t
}

func parseYAMLFrame(index int, frame map[string][][]float64) recognizer.Frame {
	if len(frame) != 1 {
		fatalf("frame %d: want exactly one of start, move or end, got %d keys", index, len(frame))
	}
	var result recognizer.Frame
	for key, points := range frame {
		kind, ok := yamlKinds[key]
		if !ok {
			fatalf("frame %d: unknown frame kind %q", index, key)
		}
		result.Kind = kind
		result.Contacts = make([]recognizer.Point, 0, len(points))
		for _, p := range points {
			if len(p) != 2 {
				fatalf("frame %d: point %v must have exactly two coordinates", index, p)
			}
			result.Contacts = append(result.Contacts, recognizer.Point{X: p[0], Y: p[1]})
		}
	}
	return result
}
