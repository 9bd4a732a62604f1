package usecases

import (
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/usecases/commands"
	"github.com/architeacher/inventory/internal/usecases/queries"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		CreateLocation commands.CreateLocationCommandHandler
		CreateAPIUser  commands.CreateAPIUserCommandHandler
		CreateDevice   commands.CreateDeviceCommandHandler
		UpdateDevice   commands.UpdateDeviceCommandHandler
		DeleteDevice   commands.DeleteDeviceCommandHandler
	}

	Queries struct {
		GetDevice      queries.GetDeviceQueryHandler
		GetLocation    queries.GetLocationQueryHandler
		GetAPIUser     queries.GetAPIUserQueryHandler
		FetchLiveness  queries.FetchLivenessQueryHandler
		FetchReadiness queries.FetchReadinessQueryHandler
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}
)

func NewApplication(
	inventorySvc ports.InventoryService,
	dbHealthChecker ports.DatabaseHealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *Application {
	return &Application{
		Commands: Commands{
			CreateLocation: commands.NewCreateLocationCommandHandler(inventorySvc, log, metricsClient, tracerProvider),
			CreateAPIUser:  commands.NewCreateAPIUserCommandHandler(inventorySvc, log, metricsClient, tracerProvider),
			CreateDevice:   commands.NewCreateDeviceCommandHandler(inventorySvc, log, metricsClient, tracerProvider),
			UpdateDevice:   commands.NewUpdateDeviceCommandHandler(inventorySvc, log, metricsClient, tracerProvider),
			DeleteDevice:   commands.NewDeleteDeviceCommandHandler(inventorySvc, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			GetDevice:      queries.NewGetDeviceQueryHandler(inventorySvc, log, metricsClient, tracerProvider),
			GetLocation:    queries.NewGetLocationQueryHandler(inventorySvc, log, metricsClient, tracerProvider),
			GetAPIUser:     queries.NewGetAPIUserQueryHandler(inventorySvc, log, metricsClient, tracerProvider),
			FetchLiveness:  queries.NewFetchLivenessQueryHandler(log, metricsClient, tracerProvider),
			FetchReadiness: queries.NewFetchReadinessQueryHandler(dbHealthChecker, log, metricsClient, tracerProvider),
		},
	}
}
