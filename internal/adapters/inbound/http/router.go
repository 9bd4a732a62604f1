package http

import (
	"net/http"

	"github.com/architeacher/inventory/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/inventory/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const metricsPath = "/metrics"

type RouterConfig struct {
	App            *usecases.Application
	Logger         logger.Logger
	MetricsClient  metrics.Client
	TracerProvider otelTrace.TracerProvider
	Config         *config.ServiceConfig
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	// Core middlewares, always applied
	router.Use(middleware.RequestTracking())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))

	if cfg.Config.HTTPServer.RequestTimeout > 0 {
		router.Use(chimiddleware.Timeout(cfg.Config.HTTPServer.RequestTimeout))
	}

	router.Use(middleware.SecurityHeaders())

	if cfg.Config.Telemetry.Traces.Enabled && cfg.TracerProvider != nil {
		router.Use(otelhttp.NewMiddleware(
			cfg.Config.App.ServiceName,
			otelhttp.WithTracerProvider(cfg.TracerProvider),
		))
		cfg.Logger.Info().Msg("distributed tracing enabled")
	}

	if cfg.Config.Telemetry.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetricsMiddleware(cfg.MetricsClient)
		router.Use(metricsMiddleware.Middleware)
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Config.Logging.AccessLog.Enabled {
		healthFilter := middleware.NewHealthCheckFilter(cfg.Config.Logging.AccessLog.LogHealthChecks)

		router.Use(healthFilter.Middleware)
		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeMetadata))
		cfg.Logger.Info().
			Bool("log_health_checks", cfg.Config.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	router.NotFound(handlers.NotFound)
	router.MethodNotAllowed(handlers.MethodNotAllowed)

	handler := handlers.NewHandler(cfg.App, cfg.Logger)

	router.Get("/livez", handler.Liveness)
	router.Get("/readyz", handler.Readiness)

	if cfg.Config.Telemetry.Metrics.Enabled {
		router.Method(http.MethodGet, metricsPath, cfg.MetricsClient.Handler())
	}

	router.Post("/locations", handler.CreateLocation)
	router.Get("/locations/{id}", handler.GetLocation)

	router.Post("/api_users", handler.CreateAPIUser)
	router.Get("/api_users/{id}", handler.GetAPIUser)

	router.Post("/devices", handler.CreateDevice)
	router.Get("/devices/{id}", handler.GetDevice)
	router.Put("/devices/{id}", handler.UpdateDevice)
	router.Delete("/devices/{id}", handler.DeleteDevice)

	return router
}
