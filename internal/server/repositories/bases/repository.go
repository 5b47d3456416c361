package bases

import (
	"context"

	"github.com/joseotaviopc/api-ari/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Base, error)
	Get(ctx context.Context, id int64) (*models.Base, error)
	Create(ctx context.Context, b *models.Base) (*models.Base, error)
	Update(ctx context.Context, b *models.Base) (*models.Base, error)
	Delete(ctx context.Context, id int64) error
}
