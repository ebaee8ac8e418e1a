// Package trace loads recorded touch gestures, either as YAML frame lists or
// as SVG drawings where each polyline is the path of one finger.
package trace

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/gesture/element"
	"github.com/osuushi/gesture/recognizer"
	"github.com/pkg/errors"
)

// Trace is a recorded gesture along with the element it was performed on.
type Trace struct {
	Name    string
	Element element.Config
	Initial recognizer.State
	Frames  []recognizer.Frame
}

// NewElement creates a fresh element in the trace's initial state.
func (t *Trace) NewElement() *element.Element {
	return element.New(t.Element, t.Initial)
}

// Load reads a trace file. The format is chosen by extension: .yaml or .yml
// for frame lists, .svg for drawings.
func Load(path string) (*Trace, error) {
	var decode func(io.Reader) (*Trace, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".svg":
		decode = DecodeSVG
	default:
		return nil, errors.Errorf("unknown trace format %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening trace %s", path)
	}
	defer f.Close()

	t, err := decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading trace %s", path)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}
