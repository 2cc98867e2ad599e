// Package desktop runs the game in a window with Ebitengine. The offscreen
// canvas is the arena; the cursor drives the bean.
package desktop

import (
	"context"
	"errors"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/setsubun/internal/assets"
	"github.com/vovakirdan/setsubun/internal/config"
	"github.com/vovakirdan/setsubun/internal/core"
	"github.com/vovakirdan/setsubun/internal/registry"
	"github.com/vovakirdan/setsubun/internal/session"
)

const windowScale = 2

var overlayColor = color.RGBA{0x00, 0x00, 0x00, 0xb0}

// Options configures Run.
type Options struct {
	Config   config.SetsubunConfig
	Loader   assets.Loader
	TickRate int
	Seed     int64
	Logger   *log.Logger
}

// Prompter keeps the game-over message until it is clicked away.
type Prompter struct {
	message string
	ack     func()
}

// Alert implements session.Prompter.
func (p *Prompter) Alert(message string, ack func()) {
	p.message = message
	p.ack = ack
}

func (p *Prompter) active() bool { return p.ack != nil }

func (p *Prompter) acknowledge() {
	ack := p.ack
	p.ack = nil
	p.message = ""
	if ack != nil {
		ack()
	}
}

// Game implements ebiten.Game.
type Game struct {
	loop    *session.FrameLoop
	canvas  *Canvas
	prompt  *Prompter
	scratch *ebiten.Image

	cursor     image.Point
	restartErr error
}

// Update: Logic (TPS)
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != g.cursor {
		g.cursor = p
		registry.DispatchPointerMove(x, y)
	}

	if g.prompt.active() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.prompt.acknowledge()
			if g.restartErr != nil {
				return g.restartErr
			}
		}
		return nil
	}

	g.loop.Fire()
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
	if !g.prompt.active() {
		return
	}

	w, h := g.canvas.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)

	lines := append(strings.Split(g.prompt.message, "\n"), "", "click to play again")
	top := h/2 - len(lines)*glyphH/2
	for i, line := range lines {
		x := w/2 - len(line)*glyphW/2
		drawText(screen, g.scratch, line, x, top+(i+1)*glyphH, glyphH, core.ColorWhite)
	}
}

// Layout: the arena is the logical screen, Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	palette, err := opts.Config.Palette()
	if err != nil {
		return err
	}

	w, h := opts.Config.Arena.Width, opts.Config.Arena.Height
	g := &Game{
		loop:    &session.FrameLoop{},
		canvas:  NewCanvas(w, h, palette.Background),
		prompt:  &Prompter{},
		scratch: ebiten.NewImage(w, glyphH),
		cursor:  image.Pt(-1, -1),
	}

	lc := session.NewLifecycle(session.Host{
		Canvas:    g.canvas,
		Scheduler: g.loop,
		Prompter:  g.prompt,
		Loader:    opts.Loader,
	}, opts.Config, opts.Seed, opts.TickRate, logger)
	lc.OnError(func(err error) { g.restartErr = err })

	if err := lc.Start(ctx); err != nil {
		return err
	}

	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle(lc.Current().Game().Title())
	ebiten.SetWindowIcon([]image.Image{lc.Current().Sprites().Demon})
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
