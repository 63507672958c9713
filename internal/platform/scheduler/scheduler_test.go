package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnStartThenTicks(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := New(Config{Name: "test", Interval: 10 * time.Millisecond, RunOnStart: true}, func(context.Context) error {
		runs.Add(1)
		return nil
	}, nil)

	require.NoError(t, s.Start(context.Background()))
	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, stopped, runs.Load())
}

func TestScheduler_NoRunBeforeFirstTickWithoutRunOnStart(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := New(Config{Interval: time.Hour}, func(context.Context) error {
		runs.Add(1)
		return nil
	}, nil)

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(0), runs.Load())
	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_StartValidation(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }

	err := New(Config{}, noop, nil).Start(context.Background())
	require.ErrorIs(t, err, ErrInvalidConfig)

	err = New(Config{Interval: time.Second}, nil, nil).Start(context.Background())
	require.ErrorIs(t, err, ErrInvalidConfig)

	s := New(Config{Interval: time.Hour}, noop, nil)
	require.NoError(t, s.Start(context.Background()))
	require.ErrorIs(t, s.Start(context.Background()), ErrAlreadyStarted)
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_RunNowReturnsTaskErrorAndPanics(t *testing.T) {
	t.Parallel()

	boom := errors.New("provider down")
	s := New(Config{Interval: time.Hour}, func(context.Context) error { return boom }, nil)
	require.ErrorIs(t, s.RunNow(context.Background(), nil), boom)

	p := New(Config{Interval: time.Hour}, func(context.Context) error { panic("nil map") }, nil)
	err := p.RunNow(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "task panicked")
}

func TestScheduler_RunNowWaitsForScheduledRun(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var scheduledRunning atomic.Bool
	var overlapped atomic.Bool
	s := New(Config{Interval: time.Hour, RunOnStart: true}, func(context.Context) error {
		scheduledRunning.Store(true)
		<-release
		scheduledRunning.Store(false)
		return nil
	}, nil)

	require.NoError(t, s.Start(context.Background()))
	require.Eventually(t, scheduledRunning.Load, time.Second, time.Millisecond)

	var manualRuns atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- s.RunNow(context.Background(), func(context.Context) error {
			if scheduledRunning.Load() {
				overlapped.Store(true)
			}
			manualRuns.Add(1)
			return nil
		})
	}()

	time.Sleep(20 * time.Millisecond)
	require.Zero(t, manualRuns.Load())
	close(release)

	require.NoError(t, <-done)
	require.EqualValues(t, 1, manualRuns.Load())
	require.False(t, overlapped.Load())
	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_FailingRunsKeepTicking(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := New(Config{Interval: 5 * time.Millisecond, RunOnStart: true}, func(context.Context) error {
		if runs.Add(1)%2 == 0 {
			panic("flaky")
		}
		return errors.New("flaky")
	}, nil)

	require.NoError(t, s.Start(context.Background()))
	require.Eventually(t, func() bool { return runs.Load() >= 4 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_ParentContextCancelEndsLoop(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32
	s := New(Config{Interval: 5 * time.Millisecond}, func(context.Context) error {
		runs.Add(1)
		return nil
	}, nil)

	require.NoError(t, s.Start(ctx))
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	require.NoError(t, s.Stop(stopCtx))
}
