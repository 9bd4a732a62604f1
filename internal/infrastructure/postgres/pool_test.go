package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/infrastructure/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type countingPinger struct {
	calls    int
	failures int
}

func (p *countingPinger) Ping(context.Context) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("connection refused")
	}

	return nil
}

func TestWaitForPing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		failures  int
		retries   uint
		wantErr   bool
		wantCalls int
	}{
		{name: "first ping succeeds", failures: 0, retries: 3, wantCalls: 1},
		{name: "recovers within budget", failures: 2, retries: 3, wantCalls: 3},
		{name: "budget exhausted", failures: 10, retries: 2, wantErr: true, wantCalls: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pinger := &countingPinger{failures: tc.failures}
			cfg := config.Database{
				ConnectRetries:       tc.retries,
				ConnectRetryInterval: time.Millisecond,
			}

			err := postgres.WaitForPing(t.Context(), pinger, cfg)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tc.wantCalls, pinger.calls)
		})
	}
}

func TestConnString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  config.Database
		want string
	}{
		{
			name: "plain credentials",
			cfg: config.Database{
				Host:     "db",
				Port:     5433,
				Database: "inventory",
				Username: "app",
				Password: "pw",
				SSLMode:  "disable",
			},
			want: "postgres://app:pw@db:5433/inventory?sslmode=disable",
		},
		{
			name: "reserved characters in credentials are escaped",
			cfg: config.Database{
				Host:     "db",
				Port:     5432,
				Database: "inventory",
				Username: "app@ops",
				Password: "p@ss:w/rd?#",
				SSLMode:  "require",
			},
			want: "postgres://app%40ops:p%40ss%3Aw%2Frd%3F%23@db:5432/inventory?sslmode=require",
		},
		{
			name: "ipv6 host is bracketed",
			cfg: config.Database{
				Host:     "::1",
				Port:     5432,
				Database: "inventory",
				Username: "app",
				Password: "pw",
				SSLMode:  "disable",
			},
			want: "postgres://app:pw@[::1]:5432/inventory?sslmode=disable",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			connString := postgres.ConnString(tc.cfg)
			require.Equal(t, tc.want, connString)

			parsed, err := pgx.ParseConfig(connString)
			require.NoError(t, err)
			require.Equal(t, tc.cfg.Username, parsed.User)
			require.Equal(t, tc.cfg.Password, parsed.Password)
			require.Equal(t, tc.cfg.Host, parsed.Host)
			require.Equal(t, uint16(tc.cfg.Port), parsed.Port)
			require.Equal(t, tc.cfg.Database, parsed.Database)
		})
	}
}
