package commands

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
	CreateLocationCommand struct {
		Name string
	}

	CreateLocationCommandHandler = decorator.CommandHandler[CreateLocationCommand, *model.Location]

	createLocationCommandHandler struct {
		inventoryService ports.InventoryService
	}
)

func NewCreateLocationCommandHandler(
	svc ports.InventoryService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateLocationCommandHandler {
	return decorator.ApplyCommandDecorators[CreateLocationCommand, *model.Location](
		createLocationCommandHandler{inventoryService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (*model.Location, error) {
	return h.inventoryService.CreateLocation(ctx, cmd.Name)
}
