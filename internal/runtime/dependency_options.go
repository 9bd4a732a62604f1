package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	inboundhttp "github.com/architeacher/inventory/internal/adapters/inbound/http"
	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/infrastructure"
	infraPostgres "github.com/architeacher/inventory/internal/infrastructure/postgres"
	"github.com/architeacher/inventory/internal/services"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithConfigLoader(ctx),
		WithTracing(ctx),
		WithMetrics(ctx),
		WithDatabase(ctx),
		WithSchema(ctx),
		WithRepositories(),
		WithInventoryService(),
		WithApplication(),
		WithHTTPServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format).
			Component(d.config.App.ServiceName)

		return nil
	}
}

func WithSecretsRepository() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		repo, err := repos.NewVaultRepository(d.config.SecretsStorage)
		if err != nil {
			return fmt.Errorf("creating Vault client: %w", err)
		}

		d.repos.secretsRepo = repo

		return nil
	}
}

// WithConfigLoader overlays Vault secrets on the environment configuration.
// It must run before the database is opened.
func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled || d.repos.secretsRepo == nil {
			return nil
		}

		if err := config.NewLoader(d.repos.secretsRepo).Load(ctx, d.config); err != nil {
			return fmt.Errorf("loading secrets from Vault: %w", err)
		}

		d.infra.logger.Info().
			Str("mount_path", d.config.SecretsStorage.MountPath).
			Msg("secrets loaded from Vault")

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		tp, shutdown, err := infrastructure.NewTracerProvider(ctx, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.addCleanup("tracer", shutdown)

		return nil
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		metricsClient, err := infrastructure.NewMetricsClient(ctx, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing metrics: %w", err)
		}

		d.infra.metricsClient = metricsClient
		d.addCleanup("metrics", d.infra.metricsClient.Shutdown)

		return nil
	}
}

func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		pool, err := infraPostgres.NewPool(ctx, d.config.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.infra.storePool = repos.NewGuardedPool(pool, repos.NewStoreBreaker(d.config.StoreBreaker, d.infra.logger))
		d.addCleanup("database", func(context.Context) error {
			pool.Close()

			return nil
		})

		d.infra.logger.Info().
			Str("host", d.config.Database.Host).
			Str("database", d.config.Database.Database).
			Msg("connected to database")

		return nil
	}
}

func WithSchema(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if err := infraPostgres.EnsureSchema(ctx, d.infra.dbPool); err != nil {
			return fmt.Errorf("ensuring database schema: %w", err)
		}

		return nil
	}
}

func WithRepositories() DependencyOption {
	return func(d *dependencies) error {
		scanner := repos.NewPgxScanner()

		d.repos.apiUsersRepo = repos.NewAPIUsersRepository(d.infra.storePool, scanner, d.infra.logger)
		d.repos.locationRepo = repos.NewLocationsRepository(d.infra.storePool, scanner, d.infra.logger)
		d.repos.devicesRepo = repos.NewDevicesRepository(d.infra.storePool, scanner, d.infra.logger)

		return nil
	}
}

func WithInventoryService() DependencyOption {
	return func(d *dependencies) error {
		d.services.inventory = services.NewInventoryService(
			d.repos.apiUsersRepo,
			d.repos.locationRepo,
			d.repos.devicesRepo,
		)
		d.services.healthChecker = d.repos.devicesRepo

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.app = usecases.NewApplication(
			d.services.inventory,
			d.services.healthChecker,
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:            d.app,
			Logger:         d.infra.logger,
			MetricsClient:  d.infra.metricsClient,
			TracerProvider: d.infra.tracerProvider,
			Config:         d.config,
		})

		d.infra.httpServer = &http.Server{
			Addr:         net.JoinHostPort(d.config.HTTPServer.Host, strconv.FormatUint(uint64(d.config.HTTPServer.Port), 10)),
			Handler:      router,
			ReadTimeout:  d.config.HTTPServer.ReadTimeout,
			WriteTimeout: d.config.HTTPServer.WriteTimeout,
			IdleTimeout:  d.config.HTTPServer.IdleTimeout,
		}
		d.addCleanup("http_server", d.infra.httpServer.Shutdown)

		return nil
	}
}
