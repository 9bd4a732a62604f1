package services

import (
	"context"
	"errors"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
)

type InventoryService struct {
	apiUsers  ports.APIUsersRepository
	locations ports.LocationsRepository
	devices   ports.DevicesRepository
}

func NewInventoryService(
	apiUsers ports.APIUsersRepository,
	locations ports.LocationsRepository,
	devices ports.DevicesRepository,
) *InventoryService {
	return &InventoryService{
		apiUsers:  apiUsers,
		locations: locations,
		devices:   devices,
	}
}

func (s *InventoryService) CreateAPIUser(ctx context.Context, name, email, password string) (*model.APIUser, error) {
	user := model.NewAPIUser(name, email, password)

	if err := s.apiUsers.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *InventoryService) GetAPIUser(ctx context.Context, id model.APIUserID) (*model.APIUser, error) {
	return s.apiUsers.FetchByID(ctx, id)
}

func (s *InventoryService) UpdateAPIUser(ctx context.Context, id model.APIUserID, patch model.APIUserPatch) (*model.APIUser, error) {
	user, err := s.apiUsers.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return user, nil
	}

	user.Apply(patch)

	if err := s.apiUsers.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *InventoryService) DeleteAPIUser(ctx context.Context, id model.APIUserID) error {
	return s.apiUsers.Delete(ctx, id)
}

func (s *InventoryService) CreateLocation(ctx context.Context, name string) (*model.Location, error) {
	location := model.NewLocation(name)

	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

func (s *InventoryService) GetLocation(ctx context.Context, id model.LocationID) (*model.Location, error) {
	return s.locations.FetchByID(ctx, id)
}

func (s *InventoryService) UpdateLocation(ctx context.Context, id model.LocationID, patch model.LocationPatch) (*model.Location, error) {
	location, err := s.locations.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return location, nil
	}

	location.Apply(patch)

	if err := s.locations.Update(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

func (s *InventoryService) DeleteLocation(ctx context.Context, id model.LocationID) error {
	return s.locations.Delete(ctx, id)
}

func (s *InventoryService) CreateDevice(ctx context.Context, device *model.Device) (*model.Device, error) {
	if err := s.resolveLocation(ctx, device.LocationID); err != nil {
		return nil, err
	}

	if err := s.resolveAPIUser(ctx, device.APIUserID); err != nil {
		return nil, err
	}

	if err := s.devices.Create(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *InventoryService) GetDevice(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	return s.devices.FetchByID(ctx, id)
}

func (s *InventoryService) UpdateDevice(ctx context.Context, id model.DeviceID, patch model.DevicePatch) (*model.Device, error) {
	device, err := s.devices.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return device, nil
	}

	if patch.Location != nil {
		if err := s.resolveLocation(ctx, *patch.Location); err != nil {
			return nil, err
		}
	}

	if patch.APIUser != nil {
		if err := s.resolveAPIUser(ctx, *patch.APIUser); err != nil {
			return nil, err
		}
	}

	device.Apply(patch)

	if err := s.devices.Update(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *InventoryService) DeleteDevice(ctx context.Context, id model.DeviceID) error {
	return s.devices.Delete(ctx, id)
}

func (s *InventoryService) resolveLocation(ctx context.Context, id model.LocationID) error {
	_, err := s.locations.FetchByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewReferenceNotFoundError(model.ReferenceLocation, int64(id))
	}

	return err
}

func (s *InventoryService) resolveAPIUser(ctx context.Context, id model.APIUserID) error {
	_, err := s.apiUsers.FetchByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewReferenceNotFoundError(model.ReferenceAPIUser, int64(id))
	}

	return err
}
