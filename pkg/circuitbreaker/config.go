package circuitbreaker

import "time"

// Config holds the configuration for a circuit breaker.
type Config struct {
	// Name identifies the circuit breaker in logs.
	Name string

	// Enabled determines whether the circuit breaker is active.
	// When false, New returns nil and Execute passes through directly.
	Enabled bool

	// MaxRequests is the number of trial requests allowed through while
	// half-open. Zero means one.
	MaxRequests uint

	// Interval is the cyclic period of the closed state after which the
	// failure counts are cleared. Zero never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that trips
	// the breaker.
	FailureThreshold uint

	// IsSuccessful decides whether a returned error still counts as a
	// healthy call. Nil treats every non-nil error as a failure.
	IsSuccessful func(err error) bool

	// OnStateChange is notified on every transition.
	OnStateChange func(name string, from, to State)
}
