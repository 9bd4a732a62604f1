package ports

//counterfeiter:generate -o ../mocks/database_health_checker.go . DatabaseHealthChecker

import "context"

// DatabaseHealthChecker defines the interface for database health checks.
type DatabaseHealthChecker interface {
	// Ping checks if the database connection is alive.
	Ping(ctx context.Context) error
}
