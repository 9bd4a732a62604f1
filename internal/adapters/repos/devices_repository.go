package repos

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/infrastructure/postgres"
	"github.com/architeacher/inventory/pkg/logger"
)

var deviceColumns = []string{"id", "name", "type", "login", "password", "location_id", "api_user_id"}

type (
	// DevicesRepository handles device persistence operations.
	DevicesRepository struct {
		pool    PoolOps
		scanner Scanner
		logger  logger.Logger
	}

	deviceRow struct {
		ID         int64  `db:"id"`
		Name       string `db:"name"`
		Type       string `db:"type"`
		Login      string `db:"login"`
		Password   string `db:"password"`
		LocationID int64  `db:"location_id"`
		APIUserID  int64  `db:"api_user_id"`
	}
)

func NewDevicesRepository(pool PoolOps, scanner Scanner, log logger.Logger) *DevicesRepository {
	return &DevicesRepository{
		pool:    pool,
		scanner: scanner,
		logger:  log.Component("devices_repository"),
	}
}

func (r *DevicesRepository) Create(ctx context.Context, device *model.Device) error {
	query, args, err := psql.Insert(postgres.DeviceTable).
		Columns("name", "type", "login", "password", "location_id", "api_user_id").
		Values(
			device.Name,
			device.Type,
			device.Login,
			device.Password,
			int64(device.LocationID),
			int64(device.APIUserID),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	id, err := insertReturningID(ctx, r.pool, r.scanner, query, args)
	if err != nil {
		return r.fail(ctx, "create", translateDeviceError(err, device))
	}

	device.ID = model.DeviceID(id)

	return nil
}

func (r *DevicesRepository) FetchByID(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	query, args, err := psql.Select(deviceColumns...).
		From(postgres.DeviceTable).
		Where(sq.Eq{"id": int64(id)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row deviceRow
	if err := selectOne(ctx, r.pool, r.scanner, &row, query, args); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrDeviceNotFound
		}

		return nil, r.fail(ctx, "fetch", translateError(err))
	}

	return &model.Device{
		ID:         model.DeviceID(row.ID),
		Name:       row.Name,
		Type:       row.Type,
		Login:      row.Login,
		Password:   row.Password,
		LocationID: model.LocationID(row.LocationID),
		APIUserID:  model.APIUserID(row.APIUserID),
	}, nil
}

func (r *DevicesRepository) Update(ctx context.Context, device *model.Device) error {
	query, args, err := psql.Update(postgres.DeviceTable).
		Set("name", device.Name).
		Set("type", device.Type).
		Set("login", device.Login).
		Set("password", device.Password).
		Set("location_id", int64(device.LocationID)).
		Set("api_user_id", int64(device.APIUserID)).
		Where(sq.Eq{"id": int64(device.ID)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return r.fail(ctx, "update", translateDeviceError(err, device))
	}

	if result.RowsAffected() == 0 {
		return model.ErrDeviceNotFound
	}

	return nil
}

func (r *DevicesRepository) Delete(ctx context.Context, id model.DeviceID) error {
	query, args, err := psql.Delete(postgres.DeviceTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return r.fail(ctx, "delete", translateError(err))
	}

	if result.RowsAffected() == 0 {
		return model.ErrDeviceNotFound
	}

	return nil
}

func (r *DevicesRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *DevicesRepository) fail(ctx context.Context, op string, err error) error {
	log := r.logger.WithContext(ctx)
	log.Debug().Err(err).Str("op", op).Msg("device store operation failed")

	return err
}
