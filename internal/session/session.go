// Package session drives one play-through: it owns the game, the pointer
// sink and the round state, and runs one simulation tick per frame.
//
// A session is not safe for concurrent use. Hosts deliver frame callbacks and
// pointer moves on a single goroutine, which is what makes the shared state
// safe; a host that cannot guarantee that must add its own serialisation.
package session

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/setsubun/internal/assets"
	"github.com/vovakirdan/setsubun/internal/config"
	"github.com/vovakirdan/setsubun/internal/core"
	"github.com/vovakirdan/setsubun/internal/games/setsubun"
)

// ErrNoSurface means the host has no usable render surface.
var ErrNoSurface = errors.New("session: no render surface")

// State is the round state.
type State int

const (
	Running State = iota
	Terminal
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Prompter shows a message the user has to acknowledge. ack must be called
// once the user does; nothing ticks in the meantime.
type Prompter interface {
	Alert(message string, ack func())
}

// Options configures a new Session.
type Options struct {
	Canvas    core.Canvas
	Scheduler Scheduler
	Prompter  Prompter
	Sprites   assets.Sprites
	Config    config.SetsubunConfig
	Seed      int64
	TickRate  int
	Logger    *log.Logger

	// OnAcknowledge runs after the game-over prompt is acknowledged.
	OnAcknowledge func()
}

// Session is one play-through.
type Session struct {
	game      *setsubun.Game
	canvas    core.Canvas
	scheduler Scheduler
	prompter  Prompter
	sprites   assets.Sprites
	pointer   core.Pointer
	state     State
	handle    FrameHandle
	logger    *log.Logger
	onAck     func()

	// tick is created once and reused for every frame request.
	tick func()
}

// New builds a Running session. The arena size is read from the canvas once.
func New(opts Options) (*Session, error) {
	if opts.Canvas == nil {
		return nil, ErrNoSurface
	}
	w, h := opts.Canvas.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: surface is %dx%d", ErrNoSurface, w, h)
	}
	if opts.Scheduler == nil || opts.Prompter == nil {
		return nil, errors.New("session: scheduler and prompter are required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	game, err := setsubun.New(opts.Config)
	if err != nil {
		return nil, err
	}
	game.Reset(core.RuntimeConfig{
		ArenaW:   w,
		ArenaH:   h,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	s := &Session{
		game:      game,
		canvas:    opts.Canvas,
		scheduler: opts.Scheduler,
		prompter:  opts.Prompter,
		sprites:   opts.Sprites,
		state:     Running,
		logger:    opts.Logger,
		onAck:     opts.OnAcknowledge,
	}
	s.tick = s.step
	return s, nil
}

// Start requests the first frame.
func (s *Session) Start() {
	s.handle = s.scheduler.RequestFrame(s.tick)
}

// SetPointerPosition records the latest pointer position in viewport
// coordinates. It is the session's pointer-move handler.
func (s *Session) SetPointerPosition(x, y int) {
	s.pointer.Set(x, y)
}

// Pointer returns the last recorded pointer position.
func (s *Session) Pointer() (int, int) {
	return s.pointer.Position()
}

// step is one frame: draw, simulate, then either request the next frame or
// end the round.
func (s *Session) step() {
	if s.state != Running {
		return
	}

	s.game.Render(s.canvas)

	result := s.game.Step(core.NewInputFrame(&s.pointer, s.canvas))

	if result.State.GameOver {
		s.state = Terminal
		s.handle = 0
		s.logger.Info("round over", "score", result.State.Score, "ticks", s.game.Ticks())
		s.prompter.Alert(fmt.Sprintf("GAME OVER!\nScore: %d", result.State.Score), s.acknowledge)
		return
	}

	s.handle = s.scheduler.RequestFrame(s.tick)
}

func (s *Session) acknowledge() {
	if s.onAck != nil {
		s.onAck()
	}
}

// State returns the round state.
func (s *Session) State() State {
	return s.state
}

// GameState returns score, counter and game-over flag.
func (s *Session) GameState() core.GameState {
	return s.game.State()
}

// Game exposes the simulation for inspection.
func (s *Session) Game() *setsubun.Game {
	return s.game
}

// Ticks returns how many ticks this session has run.
func (s *Session) Ticks() int {
	return s.game.Ticks()
}

// Handle returns the outstanding frame request, or 0 once the round is over.
func (s *Session) Handle() FrameHandle {
	return s.handle
}

// Sprites returns the images loaded for this session.
func (s *Session) Sprites() assets.Sprites {
	return s.sprites
}
