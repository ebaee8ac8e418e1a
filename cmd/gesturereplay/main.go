package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/gesture/element"
	"github.com/osuushi/gesture/internal/render"
	"github.com/osuushi/gesture/internal/trace"
	"github.com/osuushi/gesture/recognizer"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Replays a recorded gesture against a reference element and prints every
// call the recognizer makes. Traces are YAML frame lists or SVG drawings with
// one polyline per finger; see internal/trace for both formats.
var (
	app = kingpin.New("gesturereplay", "Replay a touch trace through the gesture recognizer.")

	tracePath          = app.Arg("trace", "Trace file (.yaml, .yml or .svg).").Required().ExistingFile()
	tapThreshold       = app.Flag("tap-threshold", "Displacement below which a release is a tap.").Default("2").Float64()
	allowTapAfterPinch = app.Flag("allow-tap-after-pinch", "Report taps for gestures that went through two-finger mode, as long as the first finger stayed put.").Bool()
	pngPath            = app.Flag("png", "Write a rendering of the replay to this file.").String()
	showImage          = app.Flag("imgcat", "Print the rendering in the terminal (iTerm only). Implies --png.").Bool()
	drawScale          = app.Flag("scale", "Rendering scale.").Default("1").Float64()
	noColor            = app.Flag("no-color", "Disable colored output.").Bool()
	verbose            = app.Flag("verbose", "Trace every frame to stderr.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *drawScale <= 0 {
		app.Fatalf("--scale must be positive, got %v", *drawScale)
	}

	if *verbose {
		recognizer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	tr, err := trace.Load(*tracePath)
	app.FatalIfError(err, "")

	au := aurora.NewAurora(!*noColor)
	final := replay(tr, os.Stdout, au)

	if *showImage && *pngPath == "" {
		*pngPath = filepath.Join(os.TempDir(), "gesturereplay.png")
	}
	if *pngPath != "" {
		scene := render.Scene{
			Name:      tr.Name,
			Width:     tr.Element.Width,
			Height:    tr.Element.Height,
			Container: tr.Element.Container,
			Initial:   tr.Initial,
			Final:     final,
			Frames:    tr.Frames,
		}
		app.FatalIfError(render.SavePNG(scene, *drawScale, *pngPath), "")
		if *showImage {
			render.Cat(*pngPath, os.Stdout)
		}
	}
}

// replay runs the trace and returns the element's final state.
func replay(tr *trace.Trace, w io.Writer, au aurora.Aurora) recognizer.State {
	el := tr.NewElement()
	host := &printingHost{el: el, w: w, au: au}
	r := recognizer.New(host, recognizer.Config{
		TapThreshold:       *tapThreshold,
		AllowTapAfterPinch: *allowTapAfterPinch,
	})
	r.OnTap = func() {
		el.Tap()
		fmt.Fprintln(w, au.Bold(au.Magenta("tap")))
	}
	r.OnGestureEnd = func(modified bool) {
		el.EndGesture(modified)
		fmt.Fprintf(w, "%s modified=%v\n", au.Bold(au.Cyan("gesture end")), modified)
	}

	fmt.Fprintf(w, "%s %s (%d frames)\n", au.Bold("replaying"), tr.Name, len(tr.Frames))
	for i, frame := range tr.Frames {
		fmt.Fprintf(w, "%s %-5s %v\n", au.Faint(fmt.Sprintf("%4d", i)), frame.Kind, frame.Contacts)
		r.Handle(frame)
	}

	final := el.State()
	fmt.Fprintf(w, "%s taps=%d commits=%d\n", au.Bold("done"), el.Taps, el.Commits)
	fmt.Fprintf(w, "%# v\n", pretty.Formatter(final))
	return final
}

// printingHost forwards to an element and prints each call.
type printingHost struct {
	el *element.Element
	w  io.Writer
	au aurora.Aurora
}

func (h *printingHost) State() recognizer.State {
	return h.el.State()
}

func (h *printingHost) SetActive(active bool) {
	h.el.SetActive(active)
	fmt.Fprintf(h.w, "     %s %v\n", h.au.Yellow("active"), active)
}

func (h *printingHost) Translate(x, y float64) {
	h.el.Translate(x, y)
	s := h.el.State()
	fmt.Fprintf(h.w, "     %s (%.2f, %.2f) -> (%.2f, %.2f)\n", h.au.Green("translate"), x, y, s.X, s.Y)
}

func (h *printingHost) RotateAndScale(angle, scale float64) {
	h.el.RotateAndScale(angle, scale)
	s := h.el.State()
	fmt.Fprintf(h.w, "     %s %.1f° ×%.3f\n", h.au.Blue("rotate/scale"), s.Angle*180/math.Pi, s.Scale)
}

func (h *printingHost) Bounds() recognizer.Rect {
	b := h.el.Bounds()
	fmt.Fprintf(h.w, "     %s %.1fx%.1f at (%.1f, %.1f)\n", h.au.Faint("bounds"), b.Width, b.Height, b.X, b.Y)
	return b
}
