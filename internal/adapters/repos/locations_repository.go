package repos

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/infrastructure/postgres"
	"github.com/architeacher/inventory/pkg/logger"
)

type (
	// LocationsRepository handles location persistence operations.
	LocationsRepository struct {
		pool    PoolOps
		scanner Scanner
		logger  logger.Logger
	}

	locationRow struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
	}
)

func NewLocationsRepository(pool PoolOps, scanner Scanner, log logger.Logger) *LocationsRepository {
	return &LocationsRepository{
		pool:    pool,
		scanner: scanner,
		logger:  log.Component("locations_repository"),
	}
}

func (r *LocationsRepository) Create(ctx context.Context, location *model.Location) error {
	query, args, err := psql.Insert(postgres.LocationTable).
		Columns("name").
		Values(location.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	id, err := insertReturningID(ctx, r.pool, r.scanner, query, args)
	if err != nil {
		return r.fail(ctx, "create", translateError(err))
	}

	location.ID = model.LocationID(id)

	return nil
}

func (r *LocationsRepository) FetchByID(ctx context.Context, id model.LocationID) (*model.Location, error) {
	query, args, err := psql.Select("id", "name").
		From(postgres.LocationTable).
		Where(sq.Eq{"id": int64(id)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row locationRow
	if err := selectOne(ctx, r.pool, r.scanner, &row, query, args); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrLocationNotFound
		}

		return nil, r.fail(ctx, "fetch", translateError(err))
	}

	return &model.Location{
		ID:   model.LocationID(row.ID),
		Name: row.Name,
	}, nil
}

func (r *LocationsRepository) Update(ctx context.Context, location *model.Location) error {
	query, args, err := psql.Update(postgres.LocationTable).
		Set("name", location.Name).
		Where(sq.Eq{"id": int64(location.ID)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	return r.execAffectingOne(ctx, "update", query, args)
}

func (r *LocationsRepository) Delete(ctx context.Context, id model.LocationID) error {
	query, args, err := psql.Delete(postgres.LocationTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	return r.execAffectingOne(ctx, "delete", query, args)
}

func (r *LocationsRepository) execAffectingOne(ctx context.Context, op, query string, args []any) error {
	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return r.fail(ctx, op, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return model.ErrLocationNotFound
	}

	return nil
}

func (r *LocationsRepository) fail(ctx context.Context, op string, err error) error {
	log := r.logger.WithContext(ctx)
	log.Debug().Err(err).Str("op", op).Msg("location store operation failed")

	return err
}
