package httpapi

import (
	"context"

	"github.com/joseotaviopc/api-ari/internal/server/auth"
	"github.com/joseotaviopc/api-ari/internal/server/models"
)

// AuthService is what the auth handlers need from services.AuthService.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	LogoutEnabled() bool
}

type UserService interface {
	Create(ctx context.Context, email, password, name string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type ClienteService interface {
	List(ctx context.Context, baseID int64) ([]models.Cliente, error)
	Get(ctx context.Context, baseID, id int64) (*models.Cliente, error)
	Create(ctx context.Context, baseID int64, c *models.Cliente) (*models.Cliente, error)
	Update(ctx context.Context, baseID, id int64, patch models.ClientePatch) (*models.Cliente, error)
	Delete(ctx context.Context, baseID, id int64) error
}

type BaseService interface {
	List(ctx context.Context) ([]models.Base, error)
	Get(ctx context.Context, id int64) (*models.Base, error)
	Create(ctx context.Context, nome string, ativo bool) (*models.Base, error)
	Update(ctx context.Context, id int64, patch models.BasePatch) (*models.Base, error)
	Delete(ctx context.Context, id int64) error
}

// Authenticator resolves an Authorization header to an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*auth.Identity, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
