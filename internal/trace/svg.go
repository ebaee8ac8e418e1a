package trace

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/gesture/element"
	"github.com/osuushi/gesture/recognizer"
	"github.com/pkg/errors"
)

// This reads gestures drawn in an SVG editor. It is not a full (or even
// correct) SVG reader. It looks for:
//
//   - <rect id="element">: the element's initial bounds (required)
//   - <rect id="container">: the clamping container (optional)
//   - <polyline>: one per finger, one point per frame step. A data-start
//     attribute delays touch-down by that many steps.
//   - <title>: the trace name (optional)
//
// Transforms, styles and units are ignored.

type finger struct {
	start  int
	order  int
	points []recognizer.Point
}

func (f *finger) last() int {
	return f.start + len(f.points) - 1
}

func (f *finger) activeAt(step int) bool {
	return step >= f.start && step <= f.last()
}

func (f *finger) at(step int) recognizer.Point {
	return f.points[step-f.start]
}

// DecodeSVG reads an SVG trace.
func DecodeSVG(r io.Reader) (result *Trace, err error) {
	defer func() {
		recoveredErr := HandleTracePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	if root == nil {
		fatalf("empty svg document")
	}

	t := &Trace{}
	if titles := root.FindAll("title"); len(titles) > 0 {
		t.Name = strings.TrimSpace(titles[0].Content)
	}

	var elementRect, container *recognizer.Rect
	for _, rect := range root.FindAll("rect") {
		switch rect.Attributes["id"] {
		case "element":
			parsed := parseRect(rect)
			elementRect = &parsed
		case "container":
			parsed := parseRect(rect)
			container = &parsed
		}
	}
	if elementRect == nil {
		fatalf(`no <rect id="element"> found`)
	}
	if elementRect.Empty() {
		fatalf("element must have a positive size")
	}
	t.Element = element.Config{Width: elementRect.Width, Height: elementRect.Height}
	if container != nil {
		t.Element.Container = *container
	}
	t.Initial = recognizer.State{
		X:     elementRect.X + elementRect.Width/2,
		Y:     elementRect.Y + elementRect.Height/2,
		Scale: 1,
	}

	var fingers []*finger
	for i, polyline := range root.FindAll("polyline") {
		f := &finger{order: i, points: parsePoints(polyline.Attributes["points"])}
		if len(f.points) == 0 {
			continue
		}
		if s, ok := polyline.Attributes["data-start"]; ok {
			f.start = parseInt(s)
			if f.start < 0 {
				fatalf("negative data-start %d", f.start)
			}
		}
		fingers = append(fingers, f)
	}
	t.Frames = synthesizeFrames(fingers)
	return t, nil
}

// Turn per-finger paths into touch frames. At each step, lifts are reported
// first, then moves of the fingers that stay down, then touch-downs.
func synthesizeFrames(fingers []*finger) []recognizer.Frame {
	sort.SliceStable(fingers, func(i, j int) bool {
		if fingers[i].start != fingers[j].start {
			return fingers[i].start < fingers[j].start
		}
		return fingers[i].order < fingers[j].order
	})

	lastStep := -1
	for _, f := range fingers {
		if f.last() > lastStep {
			lastStep = f.last()
		}
	}

	var frames []recognizer.Frame
	for step := 0; step <= lastStep+1; step++ {
		lifted := false
		var remaining []recognizer.Point
		for _, f := range fingers {
			if f.last() == step-1 {
				lifted = true
			} else if f.activeAt(step - 1) {
				remaining = append(remaining, f.at(step-1))
			}
		}
		if lifted {
			frames = append(frames, recognizer.Frame{Kind: recognizer.End, Contacts: remaining})
		}

		var moved, down []recognizer.Point
		started := false
		for _, f := range fingers {
			if !f.activeAt(step) {
				continue
			}
			down = append(down, f.at(step))
			if f.start < step {
				moved = append(moved, f.at(step))
			} else {
				started = true
			}
		}
		if len(moved) > 0 {
			frames = append(frames, recognizer.Frame{Kind: recognizer.Move, Contacts: moved})
		}
		if started {
			frames = append(frames, recognizer.Frame{Kind: recognizer.Start, Contacts: down})
		}
	}
	return frames
}

func parseRect(el *svgparser.Element) recognizer.Rect {
	return recognizer.Rect{
		X:      parseFloat(el.Attributes["x"]),
		Y:      parseFloat(el.Attributes["y"]),
		Width:  parseFloat(el.Attributes["width"]),
		Height: parseFloat(el.Attributes["height"]),
	}
}

// Points are "x,y x,y ...", but any mix of commas and whitespace is accepted.
func parsePoints(s string) []recognizer.Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		fatalf("odd number of coordinates in points %q", s)
	}
	points := make([]recognizer.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		points = append(points, recognizer.Point{X: parseFloat(fields[i]), Y: parseFloat(fields[i+1])})
	}
	return points
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		fatalf("invalid number %q", s)
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		fatalf("invalid integer %q", s)
	}
	return v
}
