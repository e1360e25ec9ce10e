package engine

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-room/room/budget"
	"github.com/cwbudde/algo-room/room/modal"
)

// Option configures an Engine.
type Option func(*config) error

type config struct {
	speedOfSound float64
	epsilon      float64
	workers      int
	budget       budget.Predicate
}

func defaultConfig() config {
	return config{
		speedOfSound: modal.DefaultSpeedOfSound,
		epsilon:      modal.DefaultEpsilon,
		budget:       budget.Unlimited,
	}
}

// WithSpeedOfSound sets c in m/s (default 343).
func WithSpeedOfSound(c float64) Option {
	return func(cfg *config) error {
		if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: speed of sound must be > 0 and finite: %g", ErrInvalidParameter, c)
		}

		cfg.speedOfSound = c

		return nil
	}
}

// WithEpsilon sets the floor used for the denominator clamp, the node test
// and the normalization range (default 1e-8).
func WithEpsilon(eps float64) Option {
	return func(cfg *config) error {
		if eps <= 0 || math.IsNaN(eps) || eps > 1e-3 {
			return fmt.Errorf("%w: epsilon must be in (0, 1e-3]: %g", ErrInvalidParameter, eps)
		}

		cfg.epsilon = eps

		return nil
	}
}

// WithWorkers sets the number of accumulator goroutines. Zero means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("%w: workers must be >= 0: %d", ErrInvalidParameter, n)
		}

		cfg.workers = n

		return nil
	}
}

// WithBudget installs the memory predicate consulted before allocation.
// A nil predicate admits everything.
func WithBudget(p budget.Predicate) Option {
	return func(cfg *config) error {
		if p == nil {
			p = budget.Unlimited
		}

		cfg.budget = p

		return nil
	}
}
