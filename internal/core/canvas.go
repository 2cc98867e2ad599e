package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Canvas is the render surface the game draws on. Coordinates are arena
// pixels. Implementations only draw; they never touch simulation state.
type Canvas interface {
	// Size returns the configured surface size in pixels.
	Size() (w, h int)

	// Clear erases the area (0, 0, w, h).
	Clear(w, h int)

	// FillText draws text with its baseline-left at (x, y).
	FillText(text string, x, y int, font string, c Color)

	// FillArc fills a full circle centred at (cx, cy).
	FillArc(cx, cy, radius int, c Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h int, c Color)

	// Offset returns the surface position relative to the viewport origin,
	// used to convert pointer coordinates to canvas-local ones.
	Offset() (left, top int)
}

// FontSize extracts the pixel size from a CSS-like font spec such as
// "24px sans-serif". It returns fallback when no size is present.
func FontSize(font string, fallback int) int {
	for _, field := range strings.Fields(font) {
		if !strings.HasSuffix(field, "px") {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSuffix(field, "px")); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// DrawOp is one recorded draw call.
type DrawOp struct {
	Kind   string // "clear", "text", "arc" or "rect"
	Text   string
	Font   string
	X, Y   int
	W, H   int
	Radius int
	Color  Color
}

func (op DrawOp) String() string {
	switch op.Kind {
	case "clear":
		return fmt.Sprintf("clear %dx%d", op.W, op.H)
	case "text":
		return fmt.Sprintf("text %q at (%d,%d)", op.Text, op.X, op.Y)
	case "arc":
		return fmt.Sprintf("arc r=%d at (%d,%d)", op.Radius, op.X, op.Y)
	default:
		return fmt.Sprintf("rect %dx%d at (%d,%d)", op.W, op.H, op.X, op.Y)
	}
}

// Recorder is a Canvas that keeps a log of draw calls instead of drawing.
// The headless host and the tests use it.
type Recorder struct {
	W, H      int
	Left, Top int
	Ops       []DrawOp
}

// NewRecorder creates a recorder for a w×h surface at offset (0, 0).
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// Size returns the surface size in pixels.
func (r *Recorder) Size() (int, int) { return r.W, r.H }

// Offset returns the configured surface position.
func (r *Recorder) Offset() (int, int) { return r.Left, r.Top }

// Clear drops the previous frame and records a clear op.
func (r *Recorder) Clear(w, h int) {
	// A clear starts a new frame.
	r.Ops = append(r.Ops[:0], DrawOp{Kind: "clear", W: w, H: h})
}

// FillText records a text op.
func (r *Recorder) FillText(text string, x, y int, font string, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "text", Text: text, Font: font, X: x, Y: y, Color: c})
}

// FillArc records an arc op.
func (r *Recorder) FillArc(cx, cy, radius int, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "arc", X: cx, Y: cy, Radius: radius, Color: c})
}

// FillRect records a rect op.
func (r *Recorder) FillRect(x, y, w, h int, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

// Count returns how many recorded ops of the given kind the last frame holds.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
