package repomanager

import (
	"context"
	"database/sql"

	"github.com/joseotaviopc/api-ari/internal/server/repositories/bases"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/clientes"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/users"
	"gorm.io/gorm"
)

// RepositoryManager vends repositories bound to a handle (the pool or a
// transaction) and runs schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db *gorm.DB) users.Repository
	Clientes(db *gorm.DB) clientes.Repository
	Bases(db *gorm.DB) bases.Repository
	InTx(ctx context.Context, db *gorm.DB, fn func(ctx context.Context, tx *gorm.DB) error) error
}
