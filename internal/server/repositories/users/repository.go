package users

import (
	"context"

	"github.com/joseotaviopc/api-ari/internal/server/models"
)

// Repository is the credential store. Records are looked up by id or email
// only; email uniqueness is enforced by the store.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
