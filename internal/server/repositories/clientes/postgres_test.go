package clientes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

var clienteColumns = []string{
	"id", "id_base", "id_pessoa", "id_vendedor", "limite_credito", "ativo", "observacao", "score",
	"ultima_compra", "valor_ultima_compra", "negativado", "bloqueado", "criado_em", "atualizado_em",
}

func TestList_ScopedToBase(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id_base = \$1 ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(clienteColumns).
			AddRow(1, 1, 101, nil, 100050, true, "vip", 750, nil, nil, false, false, now, now))

	got, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(100050), got[0].LimiteCredito)
	assert.Nil(t, got[0].VendedorID)
	require.NotNil(t, got[0].Score)
	assert.Equal(t, int32(750), *got[0].Score)
}

func TestGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id_base = \$1 AND id = \$2`).
			WillReturnRows(sqlmock.NewRows(clienteColumns).
				AddRow(3, 1, 101, 201, 0, true, nil, nil, nil, nil, false, true, now, now))

		c, err := repo.Get(context.Background(), 1, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.ID)
		require.NotNil(t, c.VendedorID)
		assert.Equal(t, int64(201), *c.VendedorID)
		assert.True(t, c.Bloqueado)
	})

	t.Run("other base", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM "clientes"`).WillReturnRows(sqlmock.NewRows(clienteColumns))

		_, err := repo.Get(context.Background(), 2, 3)
		require.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "clientes"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	c, err := repo.Create(context.Background(), &models.Cliente{BaseID: 1, PessoaID: 101, LimiteCredito: 500, Ativo: true})
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "clientes"`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Cliente{BaseID: 1})
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db down`, err.Error())
}

func TestUpdate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE "clientes" SET .* WHERE id_base = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := repo.Update(context.Background(), &models.Cliente{ID: 3, BaseID: 1, PessoaID: 101})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not in base", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE "clientes" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), &models.Cliente{ID: 3, BaseID: 2})
		require.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM "clientes" WHERE id_base = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "clientes"`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 1, 3))
	require.ErrorIs(t, repo.Delete(context.Background(), 1, 3), common.ErrorNotFound)
}
