// Package resilience guards calls to flaky upstream dependencies.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrBreakerOpen = errors.New("upstream breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

type BreakerConfig struct {
	// FailureThreshold is the run of consecutive failures that opens the breaker.
	// Zero disables the breaker.
	FailureThreshold int
	Cooldown         time.Duration
	// Probes is how many trial calls a half-open breaker lets through.
	Probes int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{FailureThreshold: 5, Cooldown: 30 * time.Second, Probes: 1}
}

// Breaker fails fast once an upstream keeps failing, then lets a few probes
// through after the cooldown to see whether it recovered.
type Breaker struct {
	mu sync.Mutex

	cfg BreakerConfig
	now func() time.Time

	state    State
	failures int
	openedAt time.Time
	inFlight int
	passed   int
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	defaults := DefaultBreakerConfig()
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaults.Cooldown
	}
	if cfg.Probes < 1 {
		cfg.Probes = defaults.Probes
	}
	return &Breaker{cfg: cfg, now: time.Now, state: StateClosed}
}

func (b *Breaker) Enabled() bool {
	return b != nil && b.cfg.FailureThreshold > 0
}

// Do runs fn unless the breaker is open. Errors caused by the caller's own
// context ending are not counted against the upstream.
func (b *Breaker) Do(ctx context.Context, fn func() error) error {
	if !b.Enabled() {
		return fn()
	}
	if err := b.allow(); err != nil {
		return err
	}

	err := fn()
	switch {
	case err == nil:
		b.success()
	case ctx.Err() != nil:
		b.release()
	default:
		b.failure()
	}
	return err
}

func (b *Breaker) State() State {
	if !b.Enabled() {
		return StateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.Cooldown {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			return ErrBreakerOpen
		}
		b.state = StateHalfOpen
		b.inFlight, b.passed = 0, 0
	}
	if b.state == StateHalfOpen {
		if b.inFlight >= b.cfg.Probes {
			return ErrBreakerOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *Breaker) success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.inFlight = max(b.inFlight-1, 0)
		b.passed++
		if b.passed >= b.cfg.Probes && b.inFlight == 0 {
			b.state = StateClosed
			b.failures, b.passed = 0, 0
			b.openedAt = time.Time{}
		}
	}
}

func (b *Breaker) failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.openLocked()
		}
	case StateHalfOpen:
		b.openLocked()
	case StateOpen:
		b.openedAt = b.now()
	}
}

func (b *Breaker) release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateHalfOpen {
		b.inFlight = max(b.inFlight-1, 0)
	}
}

func (b *Breaker) openLocked() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.inFlight, b.passed = 0, 0
}
