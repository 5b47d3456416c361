package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/dbx"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	gdb, err := dbx.OpenConn(db)
	require.NoError(t, err)
	return NewPostgresRepository(gdb), mock, db
}

var userColumns = []string{"id", "email", "password", "name", "is_active", "id_base", "created_at", "updated_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "ari_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	u := &models.User{Email: "alice@example.com", PasswordHash: "hash", Name: "Alice", IsActive: true, BaseID: 1}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationIsWrapped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	mock.ExpectQuery(`INSERT INTO "ari_users"`).WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`^db error: `), err.Error())

	var got *pgconn.PgError
	require.True(t, errors.As(err, &got), "driver error must stay reachable")
	assert.Equal(t, "23505", got.Code)
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "ari_users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice@example.com", "hash", "Alice", true, 1, now, now))

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, int64(1), u.BaseID)
	assert.True(t, u.IsActive)
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "ari_users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "ari_users" WHERE id = \$1`).WillReturnError(errors.New("db down"))

	_, err := repo.GetByID(context.Background(), 5)
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db down`, err.Error())
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "ari_users" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice@example.com", "h1", "Alice", true, 1, now, now).
			AddRow(2, "bob@example.com", "h2", "Bob", false, 1, now, now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bob@example.com", got[1].Email)
	assert.False(t, got[1].IsActive)
}

func TestUpdate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE "ari_users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

		u := &models.User{ID: 1, Email: "alice@example.com", Name: "Alicia", PasswordHash: "hash", IsActive: false, BaseID: 1}
		got, err := repo.Update(context.Background(), u)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE "ari_users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), &models.User{ID: 99, Name: "x"})
		require.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM "ari_users"`).WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM "ari_users"`).WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, repo.Delete(context.Background(), 1), common.ErrorNotFound)
	})
}
