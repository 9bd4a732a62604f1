package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/architeacher/inventory/internal/config"
	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens the connection pool and waits for the database to answer a
// ping, retrying with exponential backoff up to cfg.ConnectRetries times.
func NewPool(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := WaitForPing(ctx, pool, cfg); err != nil {
		pool.Close()

		return nil, err
	}

	return pool, nil
}

// ConnString renders cfg as a postgres URL with credentials and database
// name escaped.
func ConnString(cfg config.Database) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10)),
		Path:   "/" + cfg.Database,
	}

	if cfg.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{cfg.SSLMode}}.Encode()
	}

	return dsn.String()
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitForPing blocks until db answers a ping or the retry budget is spent.
func WaitForPing(ctx context.Context, db Pinger, cfg config.Database) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = cfg.ConnectRetryInterval

	_, err := backoff.Retry(
		ctx,
		func() (struct{}, error) {
			return struct{}{}, db.Ping(ctx)
		},
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(cfg.ConnectRetries+1),
	)
	if err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	return nil
}
