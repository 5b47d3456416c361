package clientes

import (
	"context"
	"errors"
	"fmt"

	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, baseID int64) ([]models.Cliente, error) {
	var out []models.Cliente
	err := r.db.WithContext(ctx).Where("id_base = ?", baseID).Order("id").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, baseID, id int64) (*models.Cliente, error) {
	c := &models.Cliente{}
	err := r.db.WithContext(ctx).Where("id_base = ? AND id = ?", baseID, id).First(c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Cliente) (*models.Cliente, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

// Update writes every mutable column of c within its base. The base and the
// creation time never change.
func (r *PostgresRepository) Update(ctx context.Context, c *models.Cliente) (*models.Cliente, error) {
	res := r.db.WithContext(ctx).
		Model(c).
		Where("id_base = ?", c.BaseID).
		Select("*").
		Omit("id", "id_base", "criado_em").
		Updates(c)
	if res.Error != nil {
		return nil, fmt.Errorf("db error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, baseID, id int64) error {
	res := r.db.WithContext(ctx).Where("id_base = ?", baseID).Delete(&models.Cliente{}, id)
	if res.Error != nil {
		return fmt.Errorf("db error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
