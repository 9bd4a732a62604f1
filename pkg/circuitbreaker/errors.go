package circuitbreaker

import "errors"

var (
	// ErrCircuitOpen indicates the breaker is rejecting calls while the
	// downstream dependency recovers.
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrTooManyRequests indicates the half-open trial budget is exhausted.
	ErrTooManyRequests = errors.New("too many requests in half-open state")

	errPanicked = errors.New("guarded call panicked")
)

// IsRejection reports whether err was produced by the breaker itself rather
// than by the guarded call.
func IsRejection(err error) bool {
	return errors.Is(err, ErrCircuitOpen) || errors.Is(err, ErrTooManyRequests)
}
