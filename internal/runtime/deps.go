package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	cleanupFunc struct {
		resource string
		fn       func(ctx context.Context) error
	}

	infrastructureDep struct {
		httpServer     *http.Server
		dbPool         *pgxpool.Pool
		storePool      repos.PoolOps
		logger         logger.Logger
		metricsClient  metrics.Client
		tracerProvider otelTrace.TracerProvider
	}

	repositories struct {
		secretsRepo  ports.SecretsRepository
		apiUsersRepo *repos.APIUsersRepository
		locationRepo *repos.LocationsRepository
		devicesRepo  *repos.DevicesRepository
	}

	servicesDep struct {
		inventory     ports.InventoryService
		healthChecker ports.DatabaseHealthChecker
	}

	dependencies struct {
		config *config.ServiceConfig

		infra infrastructureDep

		repos repositories

		services servicesDep

		app *usecases.Application

		cleanupFuncs []cleanupFunc
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{}

	allOpts := opts
	if len(allOpts) == 0 {
		allOpts = defaultOptions(ctx)
	}

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			deps.cleanup(ctx)

			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

// addCleanup registers fn to run at shutdown. Resources are released in
// reverse order of registration.
func (d *dependencies) addCleanup(resource string, fn func(ctx context.Context) error) {
	d.cleanupFuncs = append(d.cleanupFuncs, cleanupFunc{resource: resource, fn: fn})
}

func (d *dependencies) cleanup(ctx context.Context) {
	for i := len(d.cleanupFuncs) - 1; i >= 0; i-- {
		c := d.cleanupFuncs[i]

		if err := c.fn(ctx); err != nil {
			d.infra.logger.Error().
				Err(err).
				Str("resource", c.resource).
				Msg("failed to shutdown the resource gracefully")
		}
	}

	d.cleanupFuncs = nil
}
