package handlers

import (
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// Handler serves the inventory HTTP resources. It keeps no state between
// requests beyond its injected collaborators.
type Handler struct {
	app      *usecases.Application
	logger   logger.Logger
	validate *validator.Validate
}

func NewHandler(app *usecases.Application, log logger.Logger) *Handler {
	return &Handler{
		app:      app,
		logger:   log.Component("http_handler"),
		validate: newValidator(),
	}
}
