package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

var (
	ErrAlreadyStarted = errors.New("scheduler already started")
	ErrInvalidConfig  = errors.New("invalid scheduler config")
)

// Task is one unit of periodic work.
type Task func(ctx context.Context) error

type Config struct {
	Name       string
	Interval   time.Duration
	RunOnStart bool
}

// Scheduler runs a task on a fixed interval. Runs never overlap; a tick that
// fires while the previous run is still going is skipped.
type Scheduler struct {
	cfg    Config
	task   Task
	logger *logging.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	workers conc.WaitGroup
	started bool

	runMu sync.Mutex
}

func New(cfg Config, task Task, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Name == "" {
		cfg.Name = "scheduler"
	}
	return &Scheduler{
		cfg:    cfg,
		task:   task,
		logger: logger.With("job", cfg.Name),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if s.task == nil {
		return fmt.Errorf("%w: task is required", ErrInvalidConfig)
	}
	if s.cfg.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfig, s.cfg.Interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.started = true
	s.workers.Go(func() { s.loop(loopCtx) })

	s.logger.Info("scheduler started", "interval", s.cfg.Interval.String(), "run_on_start", s.cfg.RunOnStart)
	return nil
}

// Stop cancels the loop and waits for an in-flight run, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.cancel()
	s.started = false
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop scheduler %s: %w", s.cfg.Name, ctx.Err())
	}
}

// RunNow runs fn immediately, waiting for any in-flight run first, so manual
// and scheduled runs never overlap. A nil fn runs the scheduled task.
func (s *Scheduler) RunNow(ctx context.Context, fn Task) error {
	if fn == nil {
		fn = s.task
	}
	if fn == nil {
		return fmt.Errorf("%w: task is required", ErrInvalidConfig)
	}
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.run(ctx, fn)
}

func (s *Scheduler) loop(ctx context.Context) {
	if s.cfg.RunOnStart {
		s.tick(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if !s.runMu.TryLock() {
		s.logger.Warn("previous run still in progress, skipping tick")
		return
	}
	defer s.runMu.Unlock()

	if err := s.run(ctx, s.task); err != nil && ctx.Err() == nil {
		s.logger.ErrorContext(ctx, "scheduled run failed", "error", err)
	}
}

func (s *Scheduler) run(ctx context.Context, fn Task) error {
	startedAt := time.Now()

	var err error
	var catcher panics.Catcher
	catcher.Try(func() { err = fn(ctx) })
	if recovered := catcher.Recovered(); recovered != nil {
		err = fmt.Errorf("task panicked: %w", recovered.AsError())
	}
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "scheduled run finished", "duration_ms", time.Since(startedAt).Milliseconds())
	return nil
}
