package repos

import (
	"errors"
	"fmt"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/infrastructure/postgres"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	integrityViolationClass = "23"
	uniqueViolation         = "23505"
	foreignKeyViolation     = "23503"
)

// translateError maps a driver error onto the domain error kinds. Anything
// that is not an integrity violation is a store failure.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %v", model.ErrStore, err)
	}

	switch pgErr.Code {
	case uniqueViolation:
		if pgErr.ConstraintName == postgres.APIUserEmailConstraint {
			return model.ErrDuplicateEmail
		}

		return fmt.Errorf("%w: %s", model.ErrDuplicateKey, pgErr.ConstraintName)

	case foreignKeyViolation:
		switch pgErr.ConstraintName {
		case postgres.DeviceLocationConstraint:
			return model.NewReferenceNotFoundError(model.ReferenceLocation, 0)
		case postgres.DeviceAPIUserConstraint:
			return model.NewReferenceNotFoundError(model.ReferenceAPIUser, 0)
		}

		return fmt.Errorf("%w: %s", model.ErrReferenceNotFound, pgErr.ConstraintName)
	}

	return fmt.Errorf("%w: %v", model.ErrStore, err)
}

// translateDeviceError fills in the offending id of a reference violation
// from the row being written.
func translateDeviceError(err error, device *model.Device) error {
	translated := translateError(err)

	var refErr *model.ReferenceNotFoundError
	if errors.As(translated, &refErr) {
		switch refErr.Reference {
		case model.ReferenceLocation:
			refErr.ID = int64(device.LocationID)
		case model.ReferenceAPIUser:
			refErr.ID = int64(device.APIUserID)
		}
	}

	return translated
}
