package httpapi

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/server/auth"
	"github.com/joseotaviopc/api-ari/internal/server/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errNotStubbed = errors.New("not stubbed")

type stubAuth struct {
	login    func(ctx context.Context, email, password string) (string, error)
	register func(ctx context.Context, email, password, name string) (*models.User, error)
	logout   func(ctx context.Context, claims *auth.Claims) error
	enabled  bool
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (string, error) {
	if s.login == nil {
		return "", errNotStubbed
	}
	return s.login(ctx, email, password)
}

func (s *stubAuth) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if s.register == nil {
		return nil, errNotStubbed
	}
	return s.register(ctx, email, password, name)
}

func (s *stubAuth) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.logout == nil {
		return errNotStubbed
	}
	return s.logout(ctx, claims)
}

func (s *stubAuth) LogoutEnabled() bool { return s.enabled }

type stubUsers struct {
	get    func(ctx context.Context, id int64) (*models.User, error)
	update func(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
}

func (s *stubUsers) Create(ctx context.Context, email, password, name string) (*models.User, error) {
	return nil, errNotStubbed
}

func (s *stubUsers) List(ctx context.Context) ([]models.User, error) { return nil, nil }

func (s *stubUsers) Get(ctx context.Context, id int64) (*models.User, error) {
	if s.get == nil {
		return nil, errNotStubbed
	}
	return s.get(ctx, id)
}

func (s *stubUsers) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if s.update == nil {
		return nil, errNotStubbed
	}
	return s.update(ctx, id, patch)
}

func (s *stubUsers) Delete(ctx context.Context, id int64) error { return errNotStubbed }

type stubClientes struct {
	list   func(ctx context.Context, baseID int64) ([]models.Cliente, error)
	create func(ctx context.Context, baseID int64, c *models.Cliente) (*models.Cliente, error)
}

func (s *stubClientes) List(ctx context.Context, baseID int64) ([]models.Cliente, error) {
	if s.list == nil {
		return nil, errNotStubbed
	}
	return s.list(ctx, baseID)
}

func (s *stubClientes) Get(ctx context.Context, baseID, id int64) (*models.Cliente, error) {
	return nil, errNotStubbed
}

func (s *stubClientes) Create(ctx context.Context, baseID int64, c *models.Cliente) (*models.Cliente, error) {
	if s.create == nil {
		return nil, errNotStubbed
	}
	return s.create(ctx, baseID, c)
}

func (s *stubClientes) Update(ctx context.Context, baseID, id int64, patch models.ClientePatch) (*models.Cliente, error) {
	return nil, errNotStubbed
}

func (s *stubClientes) Delete(ctx context.Context, baseID, id int64) error { return errNotStubbed }

type stubBases struct {
	create func(ctx context.Context, nome string, ativo bool) (*models.Base, error)
	del    func(ctx context.Context, id int64) error
}

func (s *stubBases) List(ctx context.Context) ([]models.Base, error) { return nil, nil }

func (s *stubBases) Get(ctx context.Context, id int64) (*models.Base, error) {
	return nil, errNotStubbed
}

func (s *stubBases) Create(ctx context.Context, nome string, ativo bool) (*models.Base, error) {
	if s.create == nil {
		return nil, errNotStubbed
	}
	return s.create(ctx, nome, ativo)
}

func (s *stubBases) Update(ctx context.Context, id int64, patch models.BasePatch) (*models.Base, error) {
	return nil, errNotStubbed
}

func (s *stubBases) Delete(ctx context.Context, id int64) error {
	if s.del == nil {
		return errNotStubbed
	}
	return s.del(ctx, id)
}

// stubGuard accepts exactly one header value.
type stubGuard struct {
	header string
	id     *auth.Identity
}

func (g *stubGuard) Authenticate(ctx context.Context, header string) (*auth.Identity, error) {
	if header == "" || header != g.header {
		return nil, common.ErrorUnauthorized
	}
	return g.id, nil
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }
