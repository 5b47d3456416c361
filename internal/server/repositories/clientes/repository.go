package clientes

import (
	"context"

	"github.com/joseotaviopc/api-ari/internal/server/models"
)

// Repository stores clientes. Every lookup is scoped to a base.
type Repository interface {
	List(ctx context.Context, baseID int64) ([]models.Cliente, error)
	Get(ctx context.Context, baseID, id int64) (*models.Cliente, error)
	Create(ctx context.Context, c *models.Cliente) (*models.Cliente, error)
	Update(ctx context.Context, c *models.Cliente) (*models.Cliente, error)
	Delete(ctx context.Context, baseID, id int64) error
}
