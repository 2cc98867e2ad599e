package assets

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Completion is a single-assignment result cell. Hosts often report one
// outcome through two racing callbacks (success and failure); only the first
// delivery is kept and later ones are logged and dropped.
type Completion[T any] struct {
	name   string
	logger *log.Logger
	once   sync.Once
	done   chan struct{}
	value  T
	err    error
}

// NewCompletion creates an empty cell. A nil logger uses log.Default().
func NewCompletion[T any](name string, logger *log.Logger) *Completion[T] {
	if logger == nil {
		logger = log.Default()
	}
	return &Completion[T]{
		name:   name,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Resolve delivers a value. It returns false if a result was already delivered.
func (c *Completion[T]) Resolve(v T) bool {
	return c.deliver(v, nil)
}

// Reject delivers a failure. It returns false if a result was already delivered.
func (c *Completion[T]) Reject(err error) bool {
	var zero T
	return c.deliver(zero, err)
}

func (c *Completion[T]) deliver(v T, err error) bool {
	delivered := false
	c.once.Do(func() {
		c.value, c.err = v, err
		close(c.done)
		delivered = true
	})
	if !delivered {
		c.logger.Warn("result already delivered, dropping", "name", c.name, "error", err)
	}
	return delivered
}

// Wait blocks until a result is delivered or ctx is done.
func (c *Completion[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		return c.value, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
