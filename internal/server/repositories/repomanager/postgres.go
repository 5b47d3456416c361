// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together gorm repository constructors and database migrations
// (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/joseotaviopc/api-ari/internal/dbx"
	"github.com/joseotaviopc/api-ari/internal/server/migrations"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/bases"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/clientes"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided handle.
func (m *PostgresRepositoryManager) Users(db *gorm.DB) users.Repository {
	return users.NewPostgresRepository(db)
}

// Clientes returns a clientes.Repository bound to the provided handle.
func (m *PostgresRepositoryManager) Clientes(db *gorm.DB) clientes.Repository {
	return clientes.NewPostgresRepository(db)
}

// Bases returns a bases.Repository bound to the provided handle.
func (m *PostgresRepositoryManager) Bases(db *gorm.DB) bases.Repository {
	return bases.NewPostgresRepository(db)
}

// InTx runs fn inside a database transaction.
func (m *PostgresRepositoryManager) InTx(ctx context.Context, db *gorm.DB, fn func(ctx context.Context, tx *gorm.DB) error) error {
	return dbx.WithTx(ctx, db, nil, fn)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
