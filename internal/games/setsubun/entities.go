package setsubun

import "github.com/vovakirdan/setsubun/internal/core"

// Demon is a sprite bouncing around the arena.
type Demon struct {
	X, Y   int
	Width  int
	Height int
	DX, DY int
}

// NewDemon spawns a demon biased toward the lower-right half of the arena.
// Spawn positions are not clamped.
func NewDemon(rng *core.RNG, arenaW, arenaH, width, height int, speed float64) Demon {
	return Demon{
		X:      rng.Int(float64(arenaW)/2.0) + arenaW/2,
		Y:      rng.Int(float64(arenaH)/2.0) + arenaH/2,
		Width:  width,
		Height: height,
		DX:     rng.Int(speed),
		DY:     rng.Int(speed),
	}
}

// Stopped reports whether the demon has no velocity.
func (d Demon) Stopped() bool {
	return d.DX == 0 && d.DY == 0
}

// Panic rerolls the velocity. The draw may itself be (0, 0).
func (d *Demon) Panic(rng *core.RNG, speed float64) {
	d.DX = rng.Int(speed)
	d.DY = rng.Int(speed)
}

// Next returns the prospective position without committing it.
func (d Demon) Next() (int, int) {
	return core.SaturatingAdd(d.X, d.DX), core.SaturatingAdd(d.Y, d.DY)
}

// Move commits the velocity.
func (d *Demon) Move() {
	d.X, d.Y = d.Next()
}

// Demons is the swarm. Order has no effect on behaviour.
type Demons []Demon

// NewDemons spawns n demons.
func NewDemons(n int, rng *core.RNG, arenaW, arenaH, width, height int, speed float64) Demons {
	demons := make(Demons, 0, n)
	for range n {
		demons = append(demons, NewDemon(rng, arenaW, arenaH, width, height, speed))
	}
	return demons
}

// Bean is the pointer-steered token.
type Bean struct {
	X, Y   int
	Radius int
}

// Diameter returns twice the radius.
func (b Bean) Diameter() int {
	return b.Radius * 2
}

// Follow moves the bean to the canvas-local pointer position, one axis at a
// time. An axis only follows while the local coordinate is beyond the
// diameter and inside the arena; elsewhere it keeps its last value.
func (b *Bean) Follow(localX, localY, arenaW, arenaH int) {
	if localX > b.Diameter() && localX < arenaW {
		b.X = core.SaturatingSub(localX, b.Radius)
	}
	if localY > b.Diameter() && localY < arenaH {
		b.Y = core.SaturatingSub(localY, b.Radius)
	}
}

// Near reports whether (x, y) lies within the bean's radius on the x axis OR
// on the y axis. It is a pair of independent 1-D tests, not an overlap test.
func (b Bean) Near(x, y int) bool {
	return core.Between(x, b.X-b.Radius, b.X+b.Radius) ||
		core.Between(y, b.Y-b.Radius, b.Y+b.Radius)
}

// Circle is the safe zone. It never moves.
type Circle struct {
	X, Y   int
	Radius int
}

// Holds reports whether (x, y) lies strictly inside the circle's bounding
// box on both axes.
func (c Circle) Holds(x, y int) bool {
	return core.Between(x, c.X-c.Radius, c.X+c.Radius) &&
		core.Between(y, c.Y-c.Radius, c.Y+c.Radius)
}
