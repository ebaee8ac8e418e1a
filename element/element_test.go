package element

import (
	"math"
	"testing"

	"github.com/osuushi/gesture/recognizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestNew_DefaultScale(t *testing.T) {
	e := New(Config{Width: 10, Height: 10}, recognizer.State{X: 5, Y: 5})
	assert.Equal(t, 1.0, e.State().Scale)
}

func TestBounds(t *testing.T) {
	t.Run("axis aligned", func(t *testing.T) {
		e := New(Config{Width: 20, Height: 10}, recognizer.State{X: 50, Y: 50, Scale: 2})
		b := e.Bounds()
		assert.InDelta(t, 30, b.X, epsilon)
		assert.InDelta(t, 40, b.Y, epsilon)
		assert.InDelta(t, 40, b.Width, epsilon)
		assert.InDelta(t, 20, b.Height, epsilon)
	})

	t.Run("rotated square", func(t *testing.T) {
		e := New(Config{Width: 10, Height: 10}, recognizer.State{Scale: 1, Angle: math.Pi / 4})
		b := e.Bounds()
		diagonal := 10 * math.Sqrt2
		assert.InDelta(t, diagonal, b.Width, epsilon)
		assert.InDelta(t, diagonal, b.Height, epsilon)
		assert.InDelta(t, -diagonal/2, b.X, epsilon)
	})
}

func TestCorners(t *testing.T) {
	corners := Corners(4, 2, recognizer.State{X: 10, Y: 10, Scale: 1, Angle: math.Pi / 2})
	// A quarter turn maps the top-left corner (-2, -1) to (1, -2)
	assert.InDelta(t, 11, corners[0].X, epsilon)
	assert.InDelta(t, 8, corners[0].Y, epsilon)
}

func TestTranslate_Unbounded(t *testing.T) {
	e := New(Config{Width: 10, Height: 10}, recognizer.State{Scale: 1})
	e.Translate(-1000, 2000)
	assert.Equal(t, recognizer.State{X: -1000, Y: 2000, Scale: 1}, e.State())
}

func TestTranslate_Clamped(t *testing.T) {
	container := recognizer.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	e := New(Config{Width: 10, Height: 10, Container: container}, recognizer.State{X: 50, Y: 25, Scale: 1})
	e.Bounds()

	e.Translate(500, -500)
	assert.InDelta(t, 95, e.State().X, epsilon)
	assert.InDelta(t, 5, e.State().Y, epsilon)

	e.Translate(30, 30)
	assert.InDelta(t, 30, e.State().X, epsilon)
	assert.InDelta(t, 30, e.State().Y, epsilon)
}

func TestTranslate_CentersOversizedElement(t *testing.T) {
	container := recognizer.Rect{X: 0, Y: 0, Width: 20, Height: 20}
	e := New(Config{Width: 10, Height: 10, Container: container}, recognizer.State{X: 10, Y: 10, Scale: 4})
	e.Bounds()
	e.Translate(3, 17)
	assert.InDelta(t, 10, e.State().X, epsilon)
	assert.InDelta(t, 10, e.State().Y, epsilon)
}

func TestRotateAndScale(t *testing.T) {
	e := New(Config{Width: 10, Height: 10, MinScale: 0.5, MaxScale: 3}, recognizer.State{Scale: 1})
	e.RotateAndScale(1.25, 2)
	assert.Equal(t, 1.25, e.State().Angle)
	assert.Equal(t, 2.0, e.State().Scale)

	e.RotateAndScale(0, 10)
	assert.Equal(t, 3.0, e.State().Scale)
	e.RotateAndScale(0, 0.1)
	assert.Equal(t, 0.5, e.State().Scale)
}

func TestCounters(t *testing.T) {
	e := New(Config{Width: 1, Height: 1}, recognizer.State{})
	e.Tap()
	e.EndGesture(false)
	e.EndGesture(true)
	assert.Equal(t, 1, e.Taps)
	assert.Equal(t, 1, e.Commits)
}

func TestWithRecognizer(t *testing.T) {
	container := recognizer.Rect{X: 0, Y: 0, Width: 200, Height: 200}
	e := New(Config{Width: 20, Height: 20, Container: container}, recognizer.State{X: 100, Y: 100})
	r := recognizer.New(e, recognizer.DefaultConfig())
	e.Attach(r)

	r.HandleAll([]recognizer.Frame{
		{Kind: recognizer.Start, Contacts: []recognizer.Point{{X: 100, Y: 100}}},
		{Kind: recognizer.Move, Contacts: []recognizer.Point{{X: 400, Y: 100}}},
	})
	assert.True(t, e.Active())
	assert.InDelta(t, 190, e.State().X, epsilon, "clamped to the container")

	r.HandleAll([]recognizer.Frame{
		{Kind: recognizer.Start, Contacts: []recognizer.Point{{X: 400, Y: 100}, {X: 410, Y: 100}}},
		{Kind: recognizer.Move, Contacts: []recognizer.Point{{X: 400, Y: 100}, {X: 400, Y: 115}}},
		{Kind: recognizer.End, Contacts: []recognizer.Point{{X: 400, Y: 100}}},
		{Kind: recognizer.Move, Contacts: []recognizer.Point{{X: 400, Y: 100}}},
	})
	s := e.State()
	assert.InDelta(t, 1.5, s.Scale, epsilon)
	assert.InDelta(t, math.Pi/2, s.Angle, epsilon)
	assert.InDelta(t, 185, s.X, epsilon, "clamped against the scaled size once a finger lifts")

	r.Handle(recognizer.Frame{Kind: recognizer.End})
	require.False(t, e.Active())
	assert.Equal(t, 1, e.Commits)
	assert.Zero(t, e.Taps)

	r.HandleAll([]recognizer.Frame{
		{Kind: recognizer.Start, Contacts: []recognizer.Point{{X: 5, Y: 5}}},
		{Kind: recognizer.End},
	})
	assert.Equal(t, 1, e.Taps)
	assert.Equal(t, 1, e.Commits)
}

func TestWithRecognizer_ClampsScaledElementAfterPinch(t *testing.T) {
	container := recognizer.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	e := New(Config{Width: 20, Height: 20, Container: container, MaxScale: 4}, recognizer.State{X: 50, Y: 50})
	r := recognizer.New(e, recognizer.DefaultConfig())
	e.Attach(r)

	r.HandleAll([]recognizer.Frame{
		{Kind: recognizer.Start, Contacts: []recognizer.Point{{X: 50, Y: 50}}},
		{Kind: recognizer.Start, Contacts: []recognizer.Point{{X: 50, Y: 50}, {X: 60, Y: 50}}},
		{Kind: recognizer.Move, Contacts: []recognizer.Point{{X: 50, Y: 50}, {X: 80, Y: 50}}},
		{Kind: recognizer.End, Contacts: []recognizer.Point{{X: 50, Y: 50}}},
		{Kind: recognizer.Move, Contacts: []recognizer.Point{{X: 150, Y: 50}}},
	})

	s := e.State()
	require.InDelta(t, 3, s.Scale, epsilon)
	assert.InDelta(t, 70, s.X, epsilon)
	assert.InDelta(t, 100, s.X+e.Config().Width*s.Scale/2, epsilon, "right edge stays on the container")
}
