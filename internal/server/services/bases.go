package services

import (
	"context"

	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/repomanager"
	"gorm.io/gorm"
)

// BaseService is CRUD over bases (tenants).
type BaseService struct {
	db          *gorm.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewBaseService(db *gorm.DB, m repomanager.RepositoryManager, log logging.Logger) *BaseService {
	return &BaseService{db: db, repomanager: m, log: log.With("module", "bases")}
}

func (s *BaseService) List(ctx context.Context) ([]models.Base, error) {
	s.log.Debug(ctx, "finding all bases")
	return s.repomanager.Bases(s.db).List(ctx)
}

func (s *BaseService) Get(ctx context.Context, id int64) (*models.Base, error) {
	return s.repomanager.Bases(s.db).Get(ctx, id)
}

func (s *BaseService) Create(ctx context.Context, nome string, ativo bool) (*models.Base, error) {
	b, err := s.repomanager.Bases(s.db).Create(ctx, &models.Base{Nome: nome, Ativo: ativo})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "base created", "base_id", b.ID)
	return b, nil
}

func (s *BaseService) Update(ctx context.Context, id int64, patch models.BasePatch) (*models.Base, error) {
	var updated *models.Base
	err := s.repomanager.InTx(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		repo := s.repomanager.Bases(tx)
		b, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(b)
		updated, err = repo.Update(ctx, b)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *BaseService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Bases(s.db).Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "base deleted", "base_id", id)
	return nil
}
