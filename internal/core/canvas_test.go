package core

import (
	"image/color"
	"testing"
)

func TestRecorderStartsNewFrameOnClear(t *testing.T) {
	rec := NewRecorder(100, 50)
	rec.Left, rec.Top = 3, 4

	rec.Clear(100, 50)
	rec.FillArc(10, 10, 5, ColorBean)
	rec.FillText("x", 1, 2, "16px sans-serif", ColorBlack)
	rec.FillRect(0, 0, 4, 4, ColorZone)
	rec.Clear(100, 50)
	rec.FillArc(20, 20, 5, ColorBean)

	if len(rec.Ops) != 2 || rec.Count("clear") != 1 || rec.Count("arc") != 1 {
		t.Errorf("ops after second clear = %v", rec.Ops)
	}
	if w, h := rec.Size(); w != 100 || h != 50 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if l, top := rec.Offset(); l != 3 || top != 4 {
		t.Errorf("Offset() = (%d, %d)", l, top)
	}
}

func TestColorConversions(t *testing.T) {
	c, err := ParseColor("#D24545")
	if err != nil {
		t.Fatal(err)
	}
	if c != ColorDemon || c.Hex() != "#D24545" {
		t.Errorf("ParseColor = %+v (%s)", c, c.Hex())
	}
	if got := c.ToRGBA(); got != (color.RGBA{R: 0xd2, G: 0x45, B: 0x45, A: 0xff}) {
		t.Errorf("ToRGBA() = %v", got)
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Error("short colour should be rejected")
	}
}
