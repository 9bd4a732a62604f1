//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/inventory_service.go . InventoryService

import (
	"context"

	"github.com/architeacher/inventory/internal/domain/model"
)

// InventoryService defines the domain operations over api users, locations
// and devices.
type InventoryService interface {
	CreateAPIUser(ctx context.Context, name, email, password string) (*model.APIUser, error)
	GetAPIUser(ctx context.Context, id model.APIUserID) (*model.APIUser, error)
	UpdateAPIUser(ctx context.Context, id model.APIUserID, patch model.APIUserPatch) (*model.APIUser, error)
	DeleteAPIUser(ctx context.Context, id model.APIUserID) error

	CreateLocation(ctx context.Context, name string) (*model.Location, error)
	GetLocation(ctx context.Context, id model.LocationID) (*model.Location, error)
	UpdateLocation(ctx context.Context, id model.LocationID, patch model.LocationPatch) (*model.Location, error)
	DeleteLocation(ctx context.Context, id model.LocationID) error

	// CreateDevice resolves both references before inserting. A missing one
	// yields a *model.ReferenceNotFoundError and nothing is written.
	CreateDevice(ctx context.Context, device *model.Device) (*model.Device, error)
	GetDevice(ctx context.Context, id model.DeviceID) (*model.Device, error)

	// UpdateDevice applies only the fields present in patch, re-resolving
	// any reference it carries.
	UpdateDevice(ctx context.Context, id model.DeviceID, patch model.DevicePatch) (*model.Device, error)
	DeleteDevice(ctx context.Context, id model.DeviceID) error
}
