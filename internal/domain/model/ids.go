package model

import (
	"fmt"
	"strconv"
)

type (
	// APIUserID is the store-assigned surrogate key of an ApiUser row.
	APIUserID int64

	// LocationID is the store-assigned surrogate key of a Location row.
	LocationID int64

	// DeviceID is the store-assigned surrogate key of a Device row.
	DeviceID int64
)

func ParseAPIUserID(s string) (APIUserID, error) {
	id, err := parseID(s)

	return APIUserID(id), err
}

func ParseLocationID(s string) (LocationID, error) {
	id, err := parseID(s)

	return LocationID(id), err
}

func ParseDeviceID(s string) (DeviceID, error) {
	id, err := parseID(s)

	return DeviceID(id), err
}

func (id APIUserID) String() string  { return strconv.FormatInt(int64(id), 10) }
func (id LocationID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id DeviceID) String() string   { return strconv.FormatInt(int64(id), 10) }

func (id APIUserID) IsZero() bool  { return id == 0 }
func (id LocationID) IsZero() bool { return id == 0 }
func (id DeviceID) IsZero() bool   { return id == 0 }

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	return id, nil
}
