// Package headless runs rounds without a display, as fast as the CPU allows.
// Frames are drawn into a recorder and the game-over prompt is acknowledged
// automatically until the requested number of rounds has been played.
package headless

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/setsubun/internal/assets"
	"github.com/vovakirdan/setsubun/internal/config"
	"github.com/vovakirdan/setsubun/internal/core"
	"github.com/vovakirdan/setsubun/internal/session"
)

// Options configures Run.
type Options struct {
	Config config.SetsubunConfig
	Loader assets.Loader
	Seed   int64
	Rounds int
	Logger *log.Logger

	// Pointer, when set, positions the pointer before every frame.
	Pointer func(tick int) (x, y int)
}

// Result is the outcome of one round.
type Result struct {
	Round   int
	Score   int
	Ticks   int
	Message string
}

type runner struct {
	lc      *session.Lifecycle
	results []Result
	ack     func()
	logger  *log.Logger
}

// Alert implements session.Prompter.
func (r *runner) Alert(message string, ack func()) {
	s := r.lc.Current()
	res := Result{
		Round:   r.lc.Rounds(),
		Score:   s.GameState().Score,
		Ticks:   s.Ticks(),
		Message: message,
	}
	r.results = append(r.results, res)
	r.ack = ack
	r.logger.Debug("round finished", "round", res.Round, "score", res.Score)
}

// Run plays opts.Rounds rounds and returns their results.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Rounds <= 0 {
		return nil, errors.New("headless: rounds must be positive")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	canvas := core.NewRecorder(opts.Config.Arena.Width, opts.Config.Arena.Height)
	loop := &session.FrameLoop{}
	r := &runner{logger: logger}

	r.lc = session.NewLifecycle(session.Host{
		Canvas:    canvas,
		Scheduler: loop,
		Prompter:  r,
		Loader:    opts.Loader,
	}, opts.Config, opts.Seed, 0, logger)

	var restartErr error
	r.lc.OnError(func(err error) { restartErr = err })

	if err := r.lc.Start(ctx); err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return r.results, err
		}
		if opts.Pointer != nil && loop.Pending() {
			x, y := opts.Pointer(r.lc.Current().Ticks())
			r.lc.Current().SetPointerPosition(x, y)
		}
		if loop.Fire() {
			continue
		}
		if len(r.results) >= opts.Rounds || r.ack == nil {
			return r.results, nil
		}

		ack := r.ack
		r.ack = nil
		ack()
		if restartErr != nil {
			return r.results, restartErr
		}
	}
}
