package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/setsubun/internal/core"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// Canvas draws into an offscreen arena-sized image that Draw copies to the
// window every frame.
type Canvas struct {
	img     *ebiten.Image
	scratch *ebiten.Image
	w, h    int
	bg      core.Color
}

// NewCanvas creates a w×h canvas cleared to bg.
func NewCanvas(w, h int, bg core.Color) *Canvas {
	c := &Canvas{
		img:     ebiten.NewImage(w, h),
		scratch: ebiten.NewImage(w, glyphH),
		w:       w,
		h:       h,
		bg:      bg,
	}
	c.Clear(w, h)
	return c
}

// Image returns the offscreen image.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Size returns the arena size in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Offset is always (0, 0): cursor positions are already in arena pixels.
func (c *Canvas) Offset() (int, int) { return 0, 0 }

// Clear fills the given area with the background colour.
func (c *Canvas) Clear(w, h int) {
	vector.DrawFilledRect(c.img, 0, 0, float32(w), float32(h), c.bg.ToRGBA(), false)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h int, col core.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), col.ToRGBA(), false)
}

// FillArc fills an antialiased circle.
func (c *Canvas) FillArc(cx, cy, radius int, col core.Color) {
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(radius), col.ToRGBA(), true)
}

// FillText renders with the debug font, scaled to the font's pixel size and
// tinted. y is the baseline.
func (c *Canvas) FillText(text string, x, y int, font string, col core.Color) {
	drawText(c.img, c.scratch, text, x, y, core.FontSize(font, glyphH), col)
}

func drawText(dst, scratch *ebiten.Image, text string, x, y, size int, col core.Color) {
	scratch.Clear()
	ebitenutil.DebugPrintAt(scratch, text, 0, 0)

	scale := float64(size) / glyphH
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y-size))
	op.ColorScale.ScaleWithColor(col.ToRGBA())
	dst.DrawImage(scratch, op)
}
