package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errIntegrity = errors.New("unique violation")

func storeConfig(name string) Config {
	return Config{
		Name:             name,
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          100 * time.Millisecond,
		FailureThreshold: 2,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     Config
		wantNil bool
	}{
		{
			name: "creates circuit breaker when enabled",
			cfg:  storeConfig("postgres"),
		},
		{
			name:    "returns nil when disabled",
			cfg:     Config{Name: "postgres", Enabled: false},
			wantNil: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cb := New[any](tc.cfg)

			if tc.wantNil {
				require.Nil(t, cb)
				require.Equal(t, StateClosed, cb.State())

				return
			}

			require.NotNil(t, cb)
			require.Equal(t, tc.cfg.Name, cb.Name())
			require.Equal(t, StateClosed, cb.State())
		})
	}
}

func TestExecute_PassThrough(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cb      *CircuitBreaker[int]
		fn      func() (int, error)
		wantVal int
		wantErr string
	}{
		{
			name:    "returns value through an active breaker",
			cb:      New[int](storeConfig("ok")),
			fn:      func() (int, error) { return 7, nil },
			wantVal: 7,
		},
		{
			name:    "nil breaker runs the call directly",
			fn:      func() (int, error) { return 3, nil },
			wantVal: 3,
		},
		{
			name:    "returns the call error",
			cb:      New[int](storeConfig("err")),
			fn:      func() (int, error) { return 0, errors.New("connection refused") },
			wantErr: "connection refused",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := Execute(tc.cb, tc.fn)

			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantVal, result)
		})
	}
}

func TestExecute_TripsAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	var (
		mu          sync.Mutex
		transitions []State
	)

	cfg := storeConfig("trip")
	cfg.OnStateChange = func(_ string, _, to State) {
		mu.Lock()
		defer mu.Unlock()

		transitions = append(transitions, to)
	}

	cb := New[any](cfg)

	for range 2 {
		_, err := Execute(cb, func() (any, error) { return nil, errors.New("down") })
		require.Error(t, err)
	}

	require.Equal(t, StateOpen, cb.State())

	_, err := Execute(cb, func() (any, error) { return "unreachable", nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.True(t, IsRejection(err))

	time.Sleep(150 * time.Millisecond)

	_, err = Execute(cb, func() (any, error) { return "trial", nil })
	require.NoError(t, err)
	require.Equal(t, StateClosed, cb.State())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestExecute_IsSuccessfulKeepsBreakerClosed(t *testing.T) {
	t.Parallel()

	cfg := storeConfig("integrity")
	cfg.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, errIntegrity)
	}

	cb := New[any](cfg)

	for range 5 {
		_, err := Execute(cb, func() (any, error) { return nil, errIntegrity })
		require.ErrorIs(t, err, errIntegrity)
		require.False(t, IsRejection(err))
	}

	require.Equal(t, StateClosed, cb.State())
}

func TestAllow_ReportsOutcomeOfMultiStepCall(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cb        *CircuitBreaker[any]
		outcomes  []error
		wantState State
	}{
		{
			name:      "late failures trip the breaker",
			cb:        New[any](storeConfig("late")),
			outcomes:  []error{errors.New("scan failed"), errors.New("scan failed")},
			wantState: StateOpen,
		},
		{
			name:      "successful outcomes keep it closed",
			cb:        New[any](storeConfig("ok")),
			outcomes:  []error{nil, nil, nil},
			wantState: StateClosed,
		},
		{
			name:      "nil breaker always allows",
			outcomes:  []error{errors.New("down"), errors.New("down"), errors.New("down")},
			wantState: StateClosed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			for _, outcome := range tc.outcomes {
				done, err := tc.cb.Allow()
				require.NoError(t, err)

				done(outcome)
			}

			require.Equal(t, tc.wantState, tc.cb.State())
		})
	}
}

func TestAllow_RejectsWhileOpen(t *testing.T) {
	t.Parallel()

	cb := New[any](storeConfig("open"))

	for range 2 {
		done, err := cb.Allow()
		require.NoError(t, err)

		done(errors.New("down"))
	}

	done, err := cb.Allow()
	require.Nil(t, done)
	require.ErrorIs(t, err, ErrCircuitOpen)
}

func TestExecute_PanicCountsAsFailure(t *testing.T) {
	t.Parallel()

	cb := New[any](storeConfig("panic"))

	for range 2 {
		require.Panics(t, func() {
			_, _ = Execute(cb, func() (any, error) { panic("boom") })
		})
	}

	require.Equal(t, StateOpen, cb.State())
}
