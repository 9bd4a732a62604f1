package ports

//counterfeiter:generate -o ../mocks/api_users_repository.go . APIUsersRepository
//counterfeiter:generate -o ../mocks/locations_repository.go . LocationsRepository
//counterfeiter:generate -o ../mocks/devices_repository.go . DevicesRepository

import (
	"context"

	"github.com/architeacher/inventory/internal/domain/model"
)

type (
	// APIUsersRepository persists rows of the api_user table.
	APIUsersRepository interface {
		// Create inserts the user and sets its store-assigned ID.
		Create(ctx context.Context, user *model.APIUser) error

		// FetchByID returns model.ErrAPIUserNotFound when no row matches.
		FetchByID(ctx context.Context, id model.APIUserID) (*model.APIUser, error)

		Update(ctx context.Context, user *model.APIUser) error

		// Delete removes the user; its devices go with it.
		Delete(ctx context.Context, id model.APIUserID) error
	}

	// LocationsRepository persists rows of the location table.
	LocationsRepository interface {
		Create(ctx context.Context, location *model.Location) error
		FetchByID(ctx context.Context, id model.LocationID) (*model.Location, error)
		Update(ctx context.Context, location *model.Location) error
		Delete(ctx context.Context, id model.LocationID) error
	}

	// DevicesRepository persists rows of the device table.
	DevicesRepository interface {
		Create(ctx context.Context, device *model.Device) error
		FetchByID(ctx context.Context, id model.DeviceID) (*model.Device, error)
		Update(ctx context.Context, device *model.Device) error
		Delete(ctx context.Context, id model.DeviceID) error
	}
)
