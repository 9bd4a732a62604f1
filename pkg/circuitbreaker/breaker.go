package circuitbreaker

import (
	"errors"

	"github.com/sony/gobreaker/v2"
)

// State mirrors the breaker state without leaking gobreaker to callers.
type State string

const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half-open"
	StateOpen     State = "open"
)

// CircuitBreaker wraps gobreaker to provide resilience for calls to a
// downstream dependency.
type CircuitBreaker[T any] struct {
	cb           *gobreaker.TwoStepCircuitBreaker[T]
	isSuccessful func(err error) bool
}

// New creates a new circuit breaker with the given configuration.
// Returns nil if the circuit breaker is disabled in the configuration.
func New[T any](cfg Config) *CircuitBreaker[T] {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  uint32(cfg.MaxRequests),
		Interval:     cfg.Interval,
		Timeout:      cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.FailureThreshold)
		},
	}

	if cfg.OnStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			cfg.OnStateChange(name, fromGobreaker(from), fromGobreaker(to))
		}
	}

	isSuccessful := cfg.IsSuccessful
	if isSuccessful == nil {
		isSuccessful = func(err error) bool { return err == nil }
	}

	return &CircuitBreaker[T]{
		cb:           gobreaker.NewTwoStepCircuitBreaker[T](settings),
		isSuccessful: isSuccessful,
	}
}

// Name returns the name of the circuit breaker.
func (c *CircuitBreaker[T]) Name() string {
	return c.cb.Name()
}

// State returns the current state. A nil breaker is always closed.
func (c *CircuitBreaker[T]) State() State {
	if c == nil {
		return StateClosed
	}

	return fromGobreaker(c.cb.State())
}

// Allow reserves a call slot. The returned done func must be called exactly
// once with the outcome of the guarded work, which may span several steps.
// A nil breaker always allows and ignores the outcome.
func (c *CircuitBreaker[T]) Allow() (func(err error), error) {
	if c == nil {
		return func(error) {}, nil
	}

	done, err := c.cb.Allow()
	if err != nil {
		return nil, mapError(err)
	}

	return func(err error) {
		done(c.isSuccessful(err))
	}, nil
}

// Execute runs fn through the circuit breaker. A nil breaker runs fn directly.
// Returns ErrCircuitOpen when open and ErrTooManyRequests when the half-open
// trial budget is spent.
func Execute[T any](cb *CircuitBreaker[T], fn func() (T, error)) (result T, err error) {
	if cb == nil {
		return fn()
	}

	done, err := cb.Allow()
	if err != nil {
		var zero T

		return zero, err
	}

	defer func() {
		if e := recover(); e != nil {
			done(errPanicked)
			panic(e)
		}
	}()

	result, err = fn()
	done(err)

	return result, err
}

func mapError(err error) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return ErrCircuitOpen
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrTooManyRequests
	}

	return err
}

func fromGobreaker(s gobreaker.State) State {
	switch s {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}
