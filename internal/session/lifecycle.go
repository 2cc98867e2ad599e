package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/setsubun/internal/assets"
	"github.com/vovakirdan/setsubun/internal/config"
	"github.com/vovakirdan/setsubun/internal/core"
	"github.com/vovakirdan/setsubun/internal/registry"
)

// Host bundles the collaborators a platform provides.
type Host struct {
	Canvas    core.Canvas
	Scheduler Scheduler
	Prompter  Prompter
	Loader    assets.Loader
}

// Lifecycle is the single entry point of the game: it loads the sprites,
// builds a session, starts its frame loop and routes pointer moves to it.
// Acknowledging the game-over prompt starts over from scratch.
type Lifecycle struct {
	host     Host
	cfg      config.SetsubunConfig
	seed     int64
	tickRate int
	logger   *log.Logger
	onError  func(error)

	current *Session
	rounds  int
}

// NewLifecycle creates a lifecycle. A zero seed picks a time-based seed for
// each round; any other seed makes round n use seed+n.
func NewLifecycle(host Host, cfg config.SetsubunConfig, seed int64, tickRate int, logger *log.Logger) *Lifecycle {
	if logger == nil {
		logger = log.Default()
	}
	return &Lifecycle{
		host:     host,
		cfg:      cfg,
		seed:     seed,
		tickRate: tickRate,
		logger:   logger,
	}
}

// OnError sets the callback for failures while restarting after a round.
func (l *Lifecycle) OnError(f func(error)) {
	l.onError = f
}

// Start loads assets and launches a new session. It fails without side
// effects if the surface is missing or a sprite cannot be loaded.
func (l *Lifecycle) Start(ctx context.Context) error {
	if l.host.Canvas == nil {
		return ErrNoSurface
	}
	if l.host.Loader == nil {
		return errors.New("session: no asset loader")
	}

	sprites, err := assets.LoadSprites(ctx, l.host.Loader, l.cfg.Assets.Demon, l.cfg.Assets.Bean, l.logger)
	if err != nil {
		l.logger.Error("asset loading failed", "error", err)
		return fmt.Errorf("session: %w", err)
	}

	seed := l.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(l.rounds)
	}

	s, err := New(Options{
		Canvas:        l.host.Canvas,
		Scheduler:     l.host.Scheduler,
		Prompter:      l.host.Prompter,
		Sprites:       sprites,
		Config:        l.cfg,
		Seed:          seed,
		TickRate:      l.tickRate,
		Logger:        l.logger,
		OnAcknowledge: func() { l.restart(ctx) },
	})
	if err != nil {
		return err
	}

	l.current = s
	l.rounds++
	s.Start()
	registry.OnPointerMove(s.SetPointerPosition)

	w, h := l.host.Canvas.Size()
	l.logger.Info("session started", "game", s.Game().ID(), "round", l.rounds, "seed", seed, "arena", fmt.Sprintf("%dx%d", w, h))
	return nil
}

func (l *Lifecycle) restart(ctx context.Context) {
	if err := l.Start(ctx); err != nil {
		l.logger.Error("restart failed", "error", err)
		if l.onError != nil {
			l.onError(err)
		}
	}
}

// Current returns the active session, or nil before the first Start.
func (l *Lifecycle) Current() *Session {
	return l.current
}

// Rounds returns how many sessions have been started.
func (l *Lifecycle) Rounds() int {
	return l.rounds
}
