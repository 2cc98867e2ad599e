package core

// Cell is one character position on a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D character buffer that implements Canvas for terminals.
// Draw calls arrive in arena pixels and are scaled onto the cell grid, so the
// simulation keeps its pixel geometry no matter how large the terminal is.
type Screen struct {
	width  int // columns
	height int // rows
	arenaW int // pixels
	arenaH int
	origin [2]int // top-left cell of the screen inside the terminal
	bg     Color
	cells  [][]Cell
}

// NewScreen creates a cols×rows buffer showing an arenaW×arenaH pixel surface.
func NewScreen(cols, rows, arenaW, arenaH int) *Screen {
	s := &Screen{
		width:  Max(cols, 1),
		height: Max(rows, 1),
		arenaW: arenaW,
		arenaH: arenaH,
		bg:     ColorWhite,
	}
	s.allocate()
	s.Clear(arenaW, arenaH)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// SetBackground sets the colour used by Clear.
func (s *Screen) SetBackground(c Color) {
	s.bg = c
}

// SetOrigin places the screen at the given terminal cell. It only affects
// Offset and CellToPixel.
func (s *Screen) SetOrigin(col, row int) {
	s.origin = [2]int{col, row}
}

// Resize changes the cell grid. The arena size in pixels never changes.
func (s *Screen) Resize(cols, rows int) {
	cols, rows = Max(cols, 1), Max(rows, 1)
	if cols == s.width && rows == s.height {
		return
	}
	s.width = cols
	s.height = rows
	s.allocate()
	s.Clear(s.arenaW, s.arenaH)
}

// Size returns the arena size in pixels.
func (s *Screen) Size() (int, int) {
	return s.arenaW, s.arenaH
}

// Offset returns the pixel position of the screen inside the terminal.
func (s *Screen) Offset() (int, int) {
	return s.origin[0] * s.arenaW / s.width, s.origin[1] * s.arenaH / s.height
}

// CellToPixel converts a terminal cell to viewport pixels at the cell centre.
func (s *Screen) CellToPixel(col, row int) (int, int) {
	x := (2*col + 1) * s.arenaW / (2 * s.width)
	y := (2*row + 1) * s.arenaH / (2 * s.height)
	return x, y
}

func (s *Screen) col(px int) int { return floorDiv(px*s.width, s.arenaW) }
func (s *Screen) row(py int) int { return floorDiv(py*s.height, s.arenaH) }

// Clear fills the given pixel area with the background colour.
func (s *Screen) Clear(w, h int) {
	s.fill(0, 0, w, h, func(c *Cell) {
		*c = Cell{Rune: ' ', FG: ColorBlack, BG: s.bg}
	})
}

// FillRect paints the cells whose centres fall inside the rectangle.
func (s *Screen) FillRect(x, y, w, h int, c Color) {
	s.fill(x, y, w, h, func(cell *Cell) {
		cell.Rune = ' '
		cell.BG = c
	})
}

// FillArc paints the cells whose centres fall inside the circle. A circle
// smaller than one cell still paints the cell holding its centre.
func (s *Screen) FillArc(cx, cy, radius int, c Color) {
	painted := false
	for row := s.row(cy - radius); row <= s.row(cy+radius); row++ {
		for col := s.col(cx - radius); col <= s.col(cx+radius); col++ {
			px, py := s.cellCentre(col, row)
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if cell := s.at(col, row); cell != nil {
				cell.Rune = ' '
				cell.BG = c
				painted = true
			}
		}
	}
	if !painted {
		if cell := s.at(s.col(cx), s.row(cy)); cell != nil {
			cell.Rune = '●'
			cell.FG = c
		}
	}
}

// FillText writes text on the row just above the baseline y, keeping the
// background of the cells it covers. Font is ignored.
func (s *Screen) FillText(text string, x, y int, _ string, c Color) {
	col, row := s.col(x), s.row(y-1)
	for i, r := range []rune(text) {
		if cell := s.at(col+i, row); cell != nil {
			cell.Rune = r
			cell.FG = c
		}
	}
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(col, row int) Cell {
	if cell := s.at(col, row); cell != nil {
		return *cell
	}
	return Cell{Rune: ' ', BG: s.bg}
}

func (s *Screen) at(col, row int) *Cell {
	if col < 0 || col >= s.width || row < 0 || row >= s.height {
		return nil
	}
	return &s.cells[row][col]
}

func (s *Screen) cellCentre(col, row int) (int, int) {
	return (2*col + 1) * s.arenaW / (2 * s.width), (2*row + 1) * s.arenaH / (2 * s.height)
}

func (s *Screen) fill(x, y, w, h int, paint func(*Cell)) {
	r := NewRect(x, y, w, h)
	for row := Max(s.row(y), 0); row <= Min(s.row(r.Bottom()), s.height-1); row++ {
		for col := Max(s.col(x), 0); col <= Min(s.col(r.Right()), s.width-1); col++ {
			if r.Contains(s.cellCentre(col, row)) {
				paint(&s.cells[row][col])
			}
		}
	}
}

func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
