// Package testutil provides in-memory collaborators for tests.
package testutil

import (
	"context"
	"sync"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/ports"
)

var (
	_ ports.APIUsersRepository  = (*memoryAPIUsers)(nil)
	_ ports.LocationsRepository = (*memoryLocations)(nil)
	_ ports.DevicesRepository   = (*memoryDevices)(nil)
)

// MemoryStore mimics the relational store: sequences are never reused,
// device references must exist, api user emails are unique and deleting a
// location or api user cascades to its devices.
type MemoryStore struct {
	mu sync.Mutex

	apiUsers  map[model.APIUserID]model.APIUser
	locations map[model.LocationID]model.Location
	devices   map[model.DeviceID]model.Device

	apiUserSeq  int64
	locationSeq int64
	deviceSeq   int64

	deviceInserts int
	deviceUpdates int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		apiUsers:  make(map[model.APIUserID]model.APIUser),
		locations: make(map[model.LocationID]model.Location),
		devices:   make(map[model.DeviceID]model.Device),
	}
}

func (s *MemoryStore) APIUsers() ports.APIUsersRepository   { return (*memoryAPIUsers)(s) }
func (s *MemoryStore) Locations() ports.LocationsRepository { return (*memoryLocations)(s) }
func (s *MemoryStore) Devices() ports.DevicesRepository     { return (*memoryDevices)(s) }

// DeviceInserts reports how many device rows were written.
func (s *MemoryStore) DeviceInserts() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deviceInserts
}

func (s *MemoryStore) DeviceUpdates() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deviceUpdates
}

func (s *MemoryStore) DeviceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.devices)
}

type (
	memoryAPIUsers  MemoryStore
	memoryLocations MemoryStore
	memoryDevices   MemoryStore
)

func (r *memoryAPIUsers) Create(_ context.Context, user *model.APIUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, 0) {
		return model.ErrDuplicateEmail
	}

	r.apiUserSeq++
	user.ID = model.APIUserID(r.apiUserSeq)
	r.apiUsers[user.ID] = *user

	return nil
}

func (r *memoryAPIUsers) FetchByID(_ context.Context, id model.APIUserID) (*model.APIUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.apiUsers[id]
	if !ok {
		return nil, model.ErrAPIUserNotFound
	}

	return &user, nil
}

func (r *memoryAPIUsers) Update(_ context.Context, user *model.APIUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apiUsers[user.ID]; !ok {
		return model.ErrAPIUserNotFound
	}

	if r.emailTaken(user.Email, user.ID) {
		return model.ErrDuplicateEmail
	}

	r.apiUsers[user.ID] = *user

	return nil
}

func (r *memoryAPIUsers) Delete(_ context.Context, id model.APIUserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apiUsers[id]; !ok {
		return model.ErrAPIUserNotFound
	}

	delete(r.apiUsers, id)

	for deviceID, device := range r.devices {
		if device.APIUserID == id {
			delete(r.devices, deviceID)
		}
	}

	return nil
}

func (r *memoryAPIUsers) emailTaken(email string, except model.APIUserID) bool {
	for id, existing := range r.apiUsers {
		if id != except && existing.Email == email {
			return true
		}
	}

	return false
}

func (r *memoryLocations) Create(_ context.Context, location *model.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locationSeq++
	location.ID = model.LocationID(r.locationSeq)
	r.locations[location.ID] = *location

	return nil
}

func (r *memoryLocations) FetchByID(_ context.Context, id model.LocationID) (*model.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	location, ok := r.locations[id]
	if !ok {
		return nil, model.ErrLocationNotFound
	}

	return &location, nil
}

func (r *memoryLocations) Update(_ context.Context, location *model.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[location.ID]; !ok {
		return model.ErrLocationNotFound
	}

	r.locations[location.ID] = *location

	return nil
}

func (r *memoryLocations) Delete(_ context.Context, id model.LocationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[id]; !ok {
		return model.ErrLocationNotFound
	}

	delete(r.locations, id)

	for deviceID, device := range r.devices {
		if device.LocationID == id {
			delete(r.devices, deviceID)
		}
	}

	return nil
}

func (r *memoryDevices) Create(_ context.Context, device *model.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkReferences(device); err != nil {
		return err
	}

	r.deviceSeq++
	r.deviceInserts++
	device.ID = model.DeviceID(r.deviceSeq)
	r.devices[device.ID] = *device

	return nil
}

func (r *memoryDevices) FetchByID(_ context.Context, id model.DeviceID) (*model.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	device, ok := r.devices[id]
	if !ok {
		return nil, model.ErrDeviceNotFound
	}

	return &device, nil
}

func (r *memoryDevices) Update(_ context.Context, device *model.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[device.ID]; !ok {
		return model.ErrDeviceNotFound
	}

	if err := r.checkReferences(device); err != nil {
		return err
	}

	r.deviceUpdates++
	r.devices[device.ID] = *device

	return nil
}

func (r *memoryDevices) Delete(_ context.Context, id model.DeviceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[id]; !ok {
		return model.ErrDeviceNotFound
	}

	delete(r.devices, id)

	return nil
}

func (r *memoryDevices) checkReferences(device *model.Device) error {
	if _, ok := r.locations[device.LocationID]; !ok {
		return model.NewReferenceNotFoundError(model.ReferenceLocation, int64(device.LocationID))
	}

	if _, ok := r.apiUsers[device.APIUserID]; !ok {
		return model.NewReferenceNotFoundError(model.ReferenceAPIUser, int64(device.APIUserID))
	}

	return nil
}
