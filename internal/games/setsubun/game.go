// Package setsubun implements the demon-and-bean arcade round: demons bounce
// around the arena, a pointer-steered bean knocks them back, and the score is
// the number of demons inside the safe zone when the countdown expires.
package setsubun

import (
	"fmt"

	"github.com/vovakirdan/setsubun/internal/config"
	"github.com/vovakirdan/setsubun/internal/core"
)

// HUD text positions in arena pixels.
const (
	hudMargin       = 8
	hudBaseline     = 20
	hudCounterInset = 120
)

// Game implements the simulation for one round.
type Game struct {
	// Entities
	demons Demons
	bean   Bean
	circle Circle

	// Round state
	score     int
	counter   int
	gameOver  bool
	tickCount int

	// Settings
	cfg     config.SetsubunConfig
	palette config.Palette
	runtime core.RuntimeConfig
	rng     *core.RNG
}

// New creates a game from a validated configuration.
func New(cfg config.SetsubunConfig) (*Game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("setsubun: %w", err)
	}
	return &Game{cfg: cfg, palette: palette}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "setsubun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Setsubun"
}

// Reset spawns a fresh swarm and restores the countdown.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewRNG(runtime.Seed)

	w, h := runtime.ArenaW, runtime.ArenaH
	g.circle = Circle{X: w / 2, Y: h / 2, Radius: w / g.cfg.Circle.RadiusDivisor}
	g.bean = Bean{X: w / 2, Y: h / 2, Radius: g.cfg.Bean.Radius}
	g.demons = NewDemons(g.cfg.Demons.Count, g.rng, w, h,
		g.cfg.Demons.Width, g.cfg.Demons.Height, g.cfg.Demons.Speed)

	g.score = 0
	g.counter = g.cfg.Countdown
	g.gameOver = false
	g.tickCount = 0
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.collisionDetection()

	localX, localY := in.Local()
	g.bean.Follow(localX, localY, g.runtime.ArenaW, g.runtime.ArenaH)

	g.updateDemons()

	g.score = g.countHeld()

	g.counter--
	if g.counter <= 0 {
		g.gameOver = true
		g.counter = g.cfg.Countdown
	}

	return core.StepResult{State: g.State()}
}

// collisionDetection is the insertion point for extra collision rules. Wall
// and bean responses live in updateDemons.
func (g *Game) collisionDetection() {
}

// updateDemons runs the response pass and stuck check for every demon before
// committing any movement.
func (g *Game) updateDemons() {
	w, h := g.runtime.ArenaW, g.runtime.ArenaH

	for i := range g.demons {
		d := &g.demons[i]
		nx, ny := d.Next()

		// Walls
		if nx > w-d.Width || nx < 0 {
			d.DX = -d.DX
		}
		if ny > h-d.Height || ny < 0 {
			d.DY = -d.DY
		}

		// Bean
		if g.bean.Near(nx, ny) {
			d.DX = -d.DX
			d.DY = -d.DY
		}

		if d.Stopped() {
			d.Panic(g.rng, g.cfg.Demons.Speed)
		}
	}

	for i := range g.demons {
		g.demons[i].Move()
	}
}

// countHeld counts demons inside the safe zone.
func (g *Game) countHeld() int {
	n := 0
	for _, d := range g.demons {
		if g.circle.Holds(d.X, d.Y) {
			n++
		}
	}
	return n
}

// Render draws the current state. Draw order only affects layering.
func (g *Game) Render(dst core.Canvas) {
	w, h := g.runtime.ArenaW, g.runtime.ArenaH
	dst.Clear(w, h)

	dst.FillArc(g.circle.X, g.circle.Y, g.circle.Radius, g.palette.Circle)

	for _, d := range g.demons {
		dst.FillText(g.cfg.Demons.Glyph, d.X, d.Y, g.cfg.Demons.Font, g.palette.Demon)
	}

	dst.FillArc(g.bean.X, g.bean.Y, g.bean.Radius, g.palette.Bean)

	dst.FillText(fmt.Sprintf("Score: %d", g.score), hudMargin, hudBaseline, g.cfg.HUD.Font, g.palette.HUD)
	dst.FillText(fmt.Sprintf("Time: %d", g.counter), w-hudCounterInset, hudBaseline, g.cfg.HUD.Font, g.palette.HUD)
}

// Ticks returns how many ticks the current round has run.
func (g *Game) Ticks() int {
	return g.tickCount
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Counter:  g.counter,
		GameOver: g.gameOver,
	}
}

// Demons returns a copy of the swarm.
func (g *Game) Demons() Demons {
	return append(Demons(nil), g.demons...)
}

// Bean returns the bean.
func (g *Game) Bean() Bean {
	return g.bean
}

// Circle returns the safe zone.
func (g *Game) Circle() Circle {
	return g.circle
}
