// Package app wires the sequenced counter to its two counting tasks.
package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iliamunaev/sequenced-counter/internal/counter"
	"github.com/iliamunaev/sequenced-counter/internal/tracker"
)

// ErrUnfinished is returned when both tasks joined but the counter did not
// end its run.
var ErrUnfinished = errors.New("counter run unfinished")

type Config struct {
	StepDelay time.Duration
}

type App struct {
	Counter *counter.SequencedCounter
	Tracker *tracker.Tracker

	logger *zap.Logger
}

// New creates an App whose counter writes status lines to out.
func New(cfg Config, out io.Writer, logger *zap.Logger) *App {
	if cfg.StepDelay <= 0 {
		cfg.StepDelay = counter.StepDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		Counter: counter.New(out, counter.WithStepDelay(cfg.StepDelay), counter.WithLogger(logger)),
		Tracker: &tracker.Tracker{},
		logger:  logger,
	}
}

// Run starts the count-up and count-down tasks and blocks until both finish.
// The down-task goes first; it parks on the counter's condition until the
// up-task is done.
func (a *App) Run() error {
	var g errgroup.Group

	g.Go(a.task("count_down", a.Counter.CountDown))
	g.Go(a.task("count_up", a.Counter.CountUp))

	if err := g.Wait(); err != nil {
		return err
	}

	if err := a.checkDone(); err != nil {
		return err
	}
	a.logger.Info("run complete", zap.Int64("peak_tasks", a.Tracker.Peak()))
	return nil
}

func (a *App) checkDone() error {
	if p := a.Counter.Phase(); p != counter.Done {
		return fmt.Errorf("phase %s, value %d: %w", p, a.Counter.Value(), ErrUnfinished)
	}
	return nil
}

func (a *App) task(name string, fn func()) func() error {
	return func() error {
		a.Tracker.Inc()
		defer a.Tracker.Dec()

		start := time.Now()
		fn()
		a.logger.Info("task finished",
			zap.String("task", name),
			zap.Duration("duration", time.Since(start)),
		)
		return nil
	}
}
