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
	GetAPIUserQuery struct {
		ID model.APIUserID
	}

	GetAPIUserQueryHandler = decorator.QueryHandler[GetAPIUserQuery, *model.APIUser]

	getAPIUserQueryHandler struct {
		inventoryService ports.InventoryService
	}
)

func NewGetAPIUserQueryHandler(
	svc ports.InventoryService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetAPIUserQueryHandler {
	return decorator.ApplyQueryDecorators[GetAPIUserQuery, *model.APIUser](
		getAPIUserQueryHandler{inventoryService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getAPIUserQueryHandler) Execute(ctx context.Context, query GetAPIUserQuery) (*model.APIUser, error) {
	return h.inventoryService.GetAPIUser(ctx, query.ID)
}
