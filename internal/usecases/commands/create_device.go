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
	CreateDeviceCommand struct {
		Name       string
		Type       string
		Login      string
		Password   string
		LocationID model.LocationID
		APIUserID  model.APIUserID
	}

	CreateDeviceCommandHandler = decorator.CommandHandler[CreateDeviceCommand, *model.Device]

	createDeviceCommandHandler struct {
		inventoryService ports.InventoryService
	}
)

func NewCreateDeviceCommandHandler(
	svc ports.InventoryService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateDeviceCommandHandler {
	return decorator.ApplyCommandDecorators[CreateDeviceCommand, *model.Device](
		createDeviceCommandHandler{inventoryService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createDeviceCommandHandler) Handle(ctx context.Context, cmd CreateDeviceCommand) (*model.Device, error) {
	device := model.NewDevice(cmd.Name, cmd.Type, cmd.Login, cmd.Password, cmd.LocationID, cmd.APIUserID)

	return h.inventoryService.CreateDevice(ctx, device)
}
