package services

import (
	"context"

	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/repomanager"
	"gorm.io/gorm"
)

// ClienteService is CRUD over clientes, always scoped to the caller's base.
type ClienteService struct {
	db          *gorm.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewClienteService(db *gorm.DB, m repomanager.RepositoryManager, log logging.Logger) *ClienteService {
	return &ClienteService{db: db, repomanager: m, log: log.With("module", "clientes")}
}

func (s *ClienteService) List(ctx context.Context, baseID int64) ([]models.Cliente, error) {
	s.log.Debug(ctx, "finding all clientes", "base_id", baseID)
	return s.repomanager.Clientes(s.db).List(ctx, baseID)
}

func (s *ClienteService) Get(ctx context.Context, baseID, id int64) (*models.Cliente, error) {
	return s.repomanager.Clientes(s.db).Get(ctx, baseID, id)
}

// Create stores c in baseID regardless of any id or base set on it.
func (s *ClienteService) Create(ctx context.Context, baseID int64, c *models.Cliente) (*models.Cliente, error) {
	c.ID = 0
	c.BaseID = baseID
	out, err := s.repomanager.Clientes(s.db).Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "cliente created", "base_id", baseID, "cliente_id", out.ID)
	return out, nil
}

func (s *ClienteService) Update(ctx context.Context, baseID, id int64, patch models.ClientePatch) (*models.Cliente, error) {
	var updated *models.Cliente
	err := s.repomanager.InTx(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		repo := s.repomanager.Clientes(tx)
		c, err := repo.Get(ctx, baseID, id)
		if err != nil {
			return err
		}
		patch.Apply(c)
		updated, err = repo.Update(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ClienteService) Delete(ctx context.Context, baseID, id int64) error {
	if err := s.repomanager.Clientes(s.db).Delete(ctx, baseID, id); err != nil {
		return err
	}
	s.log.Info(ctx, "cliente deleted", "base_id", baseID, "cliente_id", id)
	return nil
}
