// Package counter implements a bounded counter shared by two tasks:
// one counts up to Max, the other waits for that to finish and counts back down.
package counter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// Max is the value the up-task counts to.
	Max = 20
	// StepDelay is the pause after every increment and decrement.
	StepDelay = 100 * time.Millisecond
)

// SequencedCounter owns the shared counter state.
// All fields below mu are guarded by it.
type SequencedCounter struct {
	mu   sync.Mutex
	cond *sync.Cond

	value            int
	phaseOneComplete bool
	out              io.Writer

	delay  time.Duration
	logger *zap.Logger
}

// Option configures a SequencedCounter.
type Option func(c *SequencedCounter)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(c *SequencedCounter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStepDelay overrides the pause between steps.
// Non-positive values keep StepDelay.
func WithStepDelay(d time.Duration) Option {
	return func(c *SequencedCounter) {
		if d > 0 {
			c.delay = d
		}
	}
}

// New creates a counter at zero that writes status lines to out.
// A nil out discards them.
func New(out io.Writer, opts ...Option) *SequencedCounter {
	if out == nil {
		out = io.Discard
	}
	c := &SequencedCounter{
		out:    out,
		delay:  StepDelay,
		logger: zap.NewNop(),
	}
	c.cond = sync.NewCond(&c.mu)
	for _, o := range opts {
		o(c)
	}
	return c
}

// CountUp increments the counter from its current value to Max, one step
// per delay, then marks phase one complete and wakes the waiter.
func (c *SequencedCounter) CountUp() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Phase one only ever runs once.
	if c.phaseOneComplete {
		return
	}

	c.logger.Debug("count up started", zap.Int("value", c.value))
	for c.value < Max {
		c.emit("Thread 1 counting up: %d", c.value)
		c.value++
		time.Sleep(c.delay)
	}

	c.phaseOneComplete = true
	c.cond.Broadcast()
	c.logger.Debug("phase one complete", zap.Int("value", c.value))
}

// CountDown blocks until phase one is complete, then decrements the
// counter to zero, one step per delay.
func (c *SequencedCounter) CountDown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for !c.phaseOneComplete {
		c.logger.Debug("count down waiting", zap.Stringer("phase", c.phase()))
		c.cond.Wait()
	}

	c.logger.Debug("count down started", zap.Int("value", c.value))
	for c.value > 0 {
		c.emit("Thread 2 counting down: %d", c.value)
		c.value--
		time.Sleep(c.delay)
	}
	c.logger.Debug("count down finished")
}

// Value returns the current counter value.
func (c *SequencedCounter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// PhaseOneComplete reports whether the up-task has reached Max.
func (c *SequencedCounter) PhaseOneComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phaseOneComplete
}

// Phase returns where the counter is in its run.
func (c *SequencedCounter) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase()
}

// Caller holds mu.
func (c *SequencedCounter) phase() Phase {
	return phaseOf(c.value, c.phaseOneComplete)
}

// Caller holds mu. A failed write is logged and skipped; counting goes on.
func (c *SequencedCounter) emit(format string, v int) {
	if _, err := fmt.Fprintf(c.out, format+"\n", v); err != nil {
		c.logger.Warn("status line not written", zap.Int("value", v), zap.Error(err))
	}
}
