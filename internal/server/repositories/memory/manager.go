// Package memory is an in-process RepositoryManager. It backs the server when
// the DSN is "memory://" and the service tests. Uniqueness and foreign keys
// are emulated with the same driver errors PostgreSQL returns, so error
// translation behaves identically.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/bases"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/clientes"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/users"
	"gorm.io/gorm"
)

type store struct {
	mu       sync.Mutex
	users    map[int64]models.User
	clientes map[int64]models.Cliente
	bases    map[int64]models.Base
	nextID   map[string]int64
	now      func() time.Time
}

// Manager implements repomanager.RepositoryManager in memory. The *gorm.DB
// arguments are ignored.
type Manager struct {
	txMu sync.Mutex
	s    *store
}

// NewManager returns an empty store holding only base 1 "Matriz", like a
// freshly migrated database.
func NewManager() *Manager {
	s := &store{
		users:    map[int64]models.User{},
		clientes: map[int64]models.Cliente{},
		bases:    map[int64]models.Base{},
		nextID:   map[string]int64{},
		now:      time.Now,
	}
	now := s.now()
	s.bases[1] = models.Base{ID: 1, Nome: "Matriz", Ativo: true, CreatedAt: now, UpdatedAt: now}
	s.nextID["bases"] = 1
	return &Manager{s: s}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(*gorm.DB) users.Repository       { return &userRepo{s: m.s} }
func (m *Manager) Clientes(*gorm.DB) clientes.Repository { return &clienteRepo{s: m.s} }
func (m *Manager) Bases(*gorm.DB) bases.Repository       { return &baseRepo{s: m.s} }

// InTx serializes fn against other transactions. Writes are not rolled back
// when fn fails.
func (m *Manager) InTx(ctx context.Context, db *gorm.DB, fn func(ctx context.Context, tx *gorm.DB) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, db)
}

func (s *store) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           pgerrcode.UniqueViolation,
		Message:        "duplicate key value violates unique constraint \"" + constraint + "\"",
		ConstraintName: constraint,
	}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           pgerrcode.ForeignKeyViolation,
		Message:        "insert or update on table violates foreign key constraint \"" + constraint + "\"",
		ConstraintName: constraint,
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
