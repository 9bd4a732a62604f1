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
	// APIUsersRepository handles api user persistence operations.
	APIUsersRepository struct {
		pool    PoolOps
		scanner Scanner
		logger  logger.Logger
	}

	apiUserRow struct {
		ID       int64  `db:"id"`
		Name     string `db:"name"`
		Email    string `db:"email"`
		Password string `db:"password"`
	}
)

func NewAPIUsersRepository(pool PoolOps, scanner Scanner, log logger.Logger) *APIUsersRepository {
	return &APIUsersRepository{
		pool:    pool,
		scanner: scanner,
		logger:  log.Component("api_users_repository"),
	}
}

func (r *APIUsersRepository) Create(ctx context.Context, user *model.APIUser) error {
	query, args, err := psql.Insert(postgres.APIUserTable).
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	id, err := insertReturningID(ctx, r.pool, r.scanner, query, args)
	if err != nil {
		return r.fail(ctx, "create", translateError(err))
	}

	user.ID = model.APIUserID(id)

	return nil
}

func (r *APIUsersRepository) FetchByID(ctx context.Context, id model.APIUserID) (*model.APIUser, error) {
	query, args, err := psql.Select("id", "name", "email", "password").
		From(postgres.APIUserTable).
		Where(sq.Eq{"id": int64(id)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row apiUserRow
	if err := selectOne(ctx, r.pool, r.scanner, &row, query, args); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrAPIUserNotFound
		}

		return nil, r.fail(ctx, "fetch", translateError(err))
	}

	return &model.APIUser{
		ID:       model.APIUserID(row.ID),
		Name:     row.Name,
		Email:    row.Email,
		Password: row.Password,
	}, nil
}

func (r *APIUsersRepository) Update(ctx context.Context, user *model.APIUser) error {
	query, args, err := psql.Update(postgres.APIUserTable).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password", user.Password).
		Where(sq.Eq{"id": int64(user.ID)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	return r.execAffectingOne(ctx, "update", query, args)
}

// Delete removes the user. Devices owned by it are removed by the store
// through the cascading foreign key.
func (r *APIUsersRepository) Delete(ctx context.Context, id model.APIUserID) error {
	query, args, err := psql.Delete(postgres.APIUserTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	return r.execAffectingOne(ctx, "delete", query, args)
}

func (r *APIUsersRepository) execAffectingOne(ctx context.Context, op, query string, args []any) error {
	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return r.fail(ctx, op, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return model.ErrAPIUserNotFound
	}

	return nil
}

func (r *APIUsersRepository) fail(ctx context.Context, op string, err error) error {
	log := r.logger.WithContext(ctx)
	log.Debug().Err(err).Str("op", op).Msg("api user store operation failed")

	return err
}
