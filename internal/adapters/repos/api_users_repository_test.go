package repos_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestAPIUsersRepository_Create(t *testing.T) {
	t.Parallel()

	const insertSQL = `INSERT INTO api_user (name,email,password) VALUES ($1,$2,$3) RETURNING id`

	cases := []struct {
		name        string
		setupMock   func(mock pgxmock.PgxPoolIface)
		expectedErr error
	}{
		{
			name: "assigns the returned id",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs("alice", "alice@example.com", "pw").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
		},
		{
			name: "email unique violation",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs("alice", "alice@example.com", "pw").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "api_user_email_key"})
			},
			expectedErr: model.ErrDuplicateEmail,
		},
		{
			name: "deadline is a store error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs("alice", "alice@example.com", "pw").
					WillReturnError(context.DeadlineExceeded)
			},
			expectedErr: model.ErrStore,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := repos.NewAPIUsersRepository(newMockPool(t, tc.setupMock), repos.NewPgxScanner(), logger.NewTestLogger())
			user := model.NewAPIUser("alice", "alice@example.com", "pw")

			err := repo.Create(t.Context(), user)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.True(t, user.ID.IsZero())

				return
			}

			require.NoError(t, err)
			require.Equal(t, model.APIUserID(1), user.ID)
		})
	}
}

func TestAPIUsersRepository_FetchByID(t *testing.T) {
	t.Parallel()

	const selectSQL = `SELECT id, name, email, password FROM api_user WHERE id = $1 LIMIT 1`

	mock := newMockPool(t, func(mock pgxmock.PgxPoolIface) {
		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password"}).
				AddRow(int64(2), "bob", "bob@example.com", "pw"))
		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
			WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password"}))
	})

	repo := repos.NewAPIUsersRepository(mock, repos.NewPgxScanner(), logger.NewTestLogger())

	user, err := repo.FetchByID(t.Context(), 2)
	require.NoError(t, err)
	require.Equal(t, &model.APIUser{ID: 2, Name: "bob", Email: "bob@example.com", Password: "pw"}, user)

	_, err = repo.FetchByID(t.Context(), 9)
	require.ErrorIs(t, err, model.ErrAPIUserNotFound)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestAPIUsersRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	const updateSQL = `UPDATE api_user SET name = $1, email = $2, password = $3 WHERE id = $4`

	mock := newMockPool(t, func(mock pgxmock.PgxPoolIface) {
		mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
			WithArgs("bob", "taken@example.com", "pw", int64(2)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "api_user_email_key"})
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM api_user WHERE id = $1`)).
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM api_user WHERE id = $1`)).
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
	})

	repo := repos.NewAPIUsersRepository(mock, repos.NewPgxScanner(), logger.NewTestLogger())

	err := repo.Update(t.Context(), &model.APIUser{ID: 2, Name: "bob", Email: "taken@example.com", Password: "pw"})
	require.ErrorIs(t, err, model.ErrDuplicateKey)

	require.NoError(t, repo.Delete(t.Context(), 2))
	require.ErrorIs(t, repo.Delete(t.Context(), 2), model.ErrAPIUserNotFound)
}
