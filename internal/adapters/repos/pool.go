package repos

import (
	"context"
	"errors"
	"strings"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/pkg/circuitbreaker"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type (
	// PoolOps defines the interface for database operations.
	// This allows injecting mock implementations for testing.
	PoolOps interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Ping(ctx context.Context) error
	}

	// GuardedPool routes Query and Exec through a circuit breaker. A Query
	// outcome is reported when its rows are closed, so errors surfacing while
	// reading or scanning count too. QueryRow is passed through unguarded.
	GuardedPool struct {
		pool    PoolOps
		breaker *circuitbreaker.CircuitBreaker[any]
	}

	guardedRows struct {
		pgx.Rows

		once sync.Once
		done func(err error)
	}
)

func NewGuardedPool(pool PoolOps, breaker *circuitbreaker.CircuitBreaker[any]) *GuardedPool {
	return &GuardedPool{
		pool:    pool,
		breaker: breaker,
	}
}

// NewStoreBreaker builds the breaker shared by all repositories. Returns nil
// when disabled, which GuardedPool treats as always closed.
func NewStoreBreaker(cfg config.StoreBreaker, log logger.Logger) *circuitbreaker.CircuitBreaker[any] {
	return circuitbreaker.New[any](circuitbreaker.Config{
		Name:             "postgres",
		Enabled:          cfg.Enabled,
		MaxRequests:      cfg.MaxRequests,
		Interval:         cfg.Interval,
		Timeout:          cfg.Timeout,
		FailureThreshold: cfg.FailureThreshold,
		IsSuccessful:     isBreakerSuccess,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", string(from)).
				Str("to", string(to)).
				Msg("store circuit breaker changed state")
		},
	})
}

func (p *GuardedPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return p.pool.QueryRow(ctx, sql, args...)
}

func (p *GuardedPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	done, err := p.breaker.Allow()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		done(err)

		return nil, err
	}

	return &guardedRows{Rows: rows, done: done}, nil
}

func (p *GuardedPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	result, err := circuitbreaker.Execute(p.breaker, func() (any, error) {
		return p.pool.Exec(ctx, sql, args...)
	})
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	return result.(pgconn.CommandTag), nil
}

func (p *GuardedPool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (r *guardedRows) Close() {
	r.Rows.Close()
	r.once.Do(func() {
		r.done(r.Rows.Err())
	})
}

// isBreakerSuccess keeps domain outcomes and caller cancellations from
// tripping the breaker.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, pgx.ErrNoRows) || errors.Is(err, context.Canceled) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, integrityViolationClass)
	}

	return false
}
