package core

import (
	"testing"
)

func TestScreenClearUsesBackground(t *testing.T) {
	s := NewScreen(10, 5, 100, 50)
	s.SetBackground(ColorZone)
	s.Clear(100, 50)

	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			cell := s.GetCell(col, row)
			if cell.Rune != ' ' || cell.BG != ColorZone {
				t.Fatalf("cell (%d,%d) = %+v, expected blank with zone background", col, row, cell)
			}
		}
	}
}

func TestScreenFillArcScalesToCells(t *testing.T) {
	// 10 px per column, 10 px per row
	s := NewScreen(10, 10, 100, 100)
	s.FillArc(50, 50, 20, ColorBean)

	if got := s.GetCell(5, 5).BG; got != ColorBean {
		t.Errorf("centre cell background = %v, expected bean colour", got)
	}
	if got := s.GetCell(0, 0).BG; got == ColorBean {
		t.Error("corner cell should not be painted")
	}
}

func TestScreenTinyArcStillVisible(t *testing.T) {
	s := NewScreen(4, 4, 400, 400)
	s.FillArc(120, 120, 2, ColorDemon)

	if got := s.GetCell(1, 1).Rune; got != '●' {
		t.Errorf("tiny arc rune = %q, expected a dot", got)
	}
}

func TestScreenFillTextKeepsBackground(t *testing.T) {
	s := NewScreen(20, 10, 200, 100)
	s.FillRect(0, 0, 200, 100, ColorZone)
	s.FillText("Hi", 10, 21, "16px sans-serif", ColorBlack)

	cell := s.GetCell(1, 2)
	if cell.Rune != 'H' || cell.BG != ColorZone || cell.FG != ColorBlack {
		t.Errorf("text cell = %+v", cell)
	}
	if got := s.GetCell(2, 2).Rune; got != 'i' {
		t.Errorf("second text cell = %q, expected 'i'", got)
	}
}

func TestScreenOffsetAndCellToPixel(t *testing.T) {
	s := NewScreen(40, 20, 400, 200)
	s.SetOrigin(0, 2)

	left, top := s.Offset()
	if left != 0 || top != 20 {
		t.Errorf("Offset() = (%d, %d), expected (0, 20)", left, top)
	}

	x, y := s.CellToPixel(3, 4)
	if x != 35 || y != 45 {
		t.Errorf("CellToPixel(3, 4) = (%d, %d), expected (35, 45)", x, y)
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		font     string
		expected int
	}{
		{"24px Arial", 24},
		{"bold 16px sans-serif", 16},
		{"Arial", 13},
		{"", 13},
	}
	for _, tc := range tests {
		if got := FontSize(tc.font, 13); got != tc.expected {
			t.Errorf("FontSize(%q) = %d, expected %d", tc.font, got, tc.expected)
		}
	}
}

func TestPointerKeepsLatest(t *testing.T) {
	var p Pointer
	p.Set(1, 2)
	p.Set(30, 40)

	rec := NewRecorder(100, 100)
	rec.Left, rec.Top = 5, 7
	in := NewInputFrame(&p, rec)

	if x, y := in.Local(); x != 25 || y != 33 {
		t.Errorf("Local() = (%d, %d), expected (25, 33)", x, y)
	}
}
