package core

// Pointer holds the most recent pointer position reported by the host, in
// viewport coordinates. It is written by the pointer-move handler and read
// once per tick. Hosts deliver both on the same goroutine, so there is no
// lock; a host that splits them across goroutines must serialise access.
type Pointer struct {
	x, y int
}

// Set records the latest pointer position, replacing the previous one.
func (p *Pointer) Set(x, y int) {
	p.x = x
	p.y = y
}

// Position returns the latest pointer position.
func (p *Pointer) Position() (int, int) {
	return p.x, p.y
}

// InputFrame is the input consumed by a single simulation tick: the pointer
// in viewport coordinates and the canvas offset from the viewport origin.
type InputFrame struct {
	PointerX   int
	PointerY   int
	OffsetLeft int
	OffsetTop  int
}

// NewInputFrame captures the pointer and canvas offset for one tick.
func NewInputFrame(p *Pointer, c Canvas) InputFrame {
	x, y := p.Position()
	left, top := c.Offset()
	return InputFrame{PointerX: x, PointerY: y, OffsetLeft: left, OffsetTop: top}
}

// Local converts the pointer to canvas-local coordinates.
func (f InputFrame) Local() (int, int) {
	return SaturatingSub(f.PointerX, f.OffsetLeft), SaturatingSub(f.PointerY, f.OffsetTop)
}
