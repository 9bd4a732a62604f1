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
	CreateAPIUserCommand struct {
		Name     string
		Email    string
		Password string
	}

	CreateAPIUserCommandHandler = decorator.CommandHandler[CreateAPIUserCommand, *model.APIUser]

	createAPIUserCommandHandler struct {
		inventoryService ports.InventoryService
	}
)

func NewCreateAPIUserCommandHandler(
	svc ports.InventoryService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateAPIUserCommandHandler {
	return decorator.ApplyCommandDecorators[CreateAPIUserCommand, *model.APIUser](
		createAPIUserCommandHandler{inventoryService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createAPIUserCommandHandler) Handle(ctx context.Context, cmd CreateAPIUserCommand) (*model.APIUser, error) {
	return h.inventoryService.CreateAPIUser(ctx, cmd.Name, cmd.Email, cmd.Password)
}
