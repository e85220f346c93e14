package async

import (
	"context"
	"sync"
	"time"

	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
)

// Coalescer collapses bursts of trigger calls into a single handler run.
// A pending run is cancelled and replaced by the newest trigger, so rapid
// successive edits that each request a full re-layout cost one
// recomputation on the next scheduling tick.
type Coalescer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	handler func(ctx context.Context)
}

// NewCoalescer creates a coalescer that runs handler once per burst, delay
// after the last trigger.
func NewCoalescer(delay time.Duration, handler func(ctx context.Context)) *Coalescer {
	return &Coalescer{
		delay:   delay,
		handler: handler,
	}
}

// Trigger schedules a handler run, replacing any pending one.
func (c *Coalescer) Trigger(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}

	// Preserve the logger; the triggering callback returns before the run.
	runCtx := logging.With(context.Background(), logging.From(ctx))
	c.timer = time.AfterFunc(c.delay, func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(runCtx).Error("panic in coalesced handler", "panic", r)
			}
		}()
		c.handler(runCtx)
	})
}

// Stop cancels any pending run.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
