// Package render draws a replayed gesture for debugging: the finger paths, the
// element where it started and where it ended up.
package render

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/gesture/element"
	"github.com/osuushi/gesture/recognizer"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Padding around the scene, in pixels
const drawPadding = 40

var fingerColors = []color.RGBA{
	colornames.Orangered,
	colornames.Deepskyblue,
	colornames.Gold,
	colornames.Limegreen,
	colornames.Violet,
}

// Scene is everything needed to draw one replay.
type Scene struct {
	Name string

	// Element size, unscaled
	Width, Height float64

	Container recognizer.Rect
	Initial   recognizer.State
	Final     recognizer.State
	Frames    []recognizer.Frame
}

// path is a run of positions for one contact slot, broken whenever the
// contact count changes.
type path struct {
	slot   int
	down   bool
	points []recognizer.Point
}

// Draw renders the scene at the given scale.
func Draw(s Scene, scale float64) *gg.Context {
	minX, minY, maxX, maxY := s.bounds()

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetColor(colornames.Black)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Touch coordinates already have y pointing down, so no flip
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	if !s.Container.Empty() {
		c.SetColor(colornames.Dimgray)
		c.SetLineWidth(1)
		c.DrawRectangle(s.Container.X, s.Container.Y, s.Container.Width, s.Container.Height)
		c.Stroke()
	}

	c.SetDash(4, 4)
	c.SetColor(colornames.Silver)
	drawOutline(c, element.Corners(s.Width, s.Height, s.Initial))
	c.SetDash()
	c.SetColor(colornames.Lime)
	drawOutline(c, element.Corners(s.Width, s.Height, s.Final))

	for _, p := range fingerPaths(s.Frames) {
		c.SetColor(fingerColors[p.slot%len(fingerColors)])
		if p.down {
			c.DrawCircle(p.points[0].X, p.points[0].Y, 4/scale)
			c.Fill()
		}
		if len(p.points) < 2 {
			continue
		}
		c.SetLineWidth(2)
		c.MoveTo(p.points[0].X, p.points[0].Y)
		for _, pt := range p.points[1:] {
			c.LineTo(pt.X, pt.Y)
		}
		c.Stroke()
	}

	if s.Name != "" {
		c.Push()
		c.Identity()
		c.SetColor(colornames.White)
		c.DrawStringAnchored(s.Name, drawPadding/2, drawPadding/2, 0, 0.5)
		c.Pop()
	}
	return c
}

// SavePNG renders the scene and writes it to path. The scale must be positive.
func SavePNG(s Scene, scale float64, path string) error {
	if scale <= 0 || math.IsNaN(scale) {
		return errors.Errorf("invalid scale %v", scale)
	}
	if err := Draw(s, scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Cat prints a PNG file inline in the terminal (iTerm only).
func Cat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func drawOutline(c *gg.Context, corners [4]recognizer.Point) {
	c.SetLineWidth(2)
	c.MoveTo(corners[0].X, corners[0].Y)
	for _, p := range corners[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.Stroke()
}

// Split the frames into per-slot paths. Moves with an unchanged contact count
// extend the current paths; any other frame starts new ones.
func fingerPaths(frames []recognizer.Frame) []path {
	var done, current []path
	for _, frame := range frames {
		if frame.Kind == recognizer.Move && len(frame.Contacts) == len(current) {
			for i, p := range frame.Contacts {
				current[i].points = append(current[i].points, p)
			}
			continue
		}
		done = append(done, current...)
		current = make([]path, len(frame.Contacts))
		for i, p := range frame.Contacts {
			current[i] = path{slot: i, down: frame.Kind == recognizer.Start, points: []recognizer.Point{p}}
		}
	}
	return append(done, current...)
}

func (s Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(p recognizer.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	for _, state := range []recognizer.State{s.Initial, s.Final} {
		for _, p := range element.Corners(s.Width, s.Height, state) {
			add(p)
		}
	}
	if !s.Container.Empty() {
		add(recognizer.Point{X: s.Container.X, Y: s.Container.Y})
		add(recognizer.Point{X: s.Container.X + s.Container.Width, Y: s.Container.Y + s.Container.Height})
	}
	for _, frame := range s.Frames {
		for _, p := range frame.Contacts {
			add(p)
		}
	}
	return
}
