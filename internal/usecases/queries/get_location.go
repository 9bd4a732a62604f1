package queries

import (
	"context"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/pkg/decorator"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	GetLocationQuery struct {
		ID model.LocationID
	}

	GetLocationQueryHandler = decorator.QueryHandler[GetLocationQuery, *model.Location]

	getLocationQueryHandler struct {
		inventoryService ports.InventoryService
	}
)

func NewGetLocationQueryHandler(
	svc ports.InventoryService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetLocationQueryHandler {
	return decorator.ApplyQueryDecorators[GetLocationQuery, *model.Location](
		getLocationQueryHandler{inventoryService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getLocationQueryHandler) Execute(ctx context.Context, query GetLocationQuery) (*model.Location, error) {
	return h.inventoryService.GetLocation(ctx, query.ID)
}
