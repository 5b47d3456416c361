// Package services contains server-side business logic. Services take their
// collaborators explicitly and bind repositories to the pool or to a
// transaction through the repository manager.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/auth"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/repomanager"
	"gorm.io/gorm"
)

// TokenSigner issues access tokens for a user id.
type TokenSigner interface {
	Sign(userID int64) (string, error)
}

// Revoker denylists a token id until it would have expired anyway.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService provides authentication operations:
//   - Login: verify credentials and sign an access token
//   - Register: create a user in the default base
//   - Logout: revoke the caller's token (only with a Revoker)
type AuthService struct {
	db            *gorm.DB
	repomanager   repomanager.RepositoryManager
	hasher        auth.PasswordHasher
	tokens        TokenSigner
	revoker       Revoker
	defaultBaseID int64
	log           logging.Logger
	now           func() time.Time
}

// NewAuthService constructs an AuthService. revoker may be nil, which
// disables Logout.
func NewAuthService(
	db *gorm.DB,
	m repomanager.RepositoryManager,
	hasher auth.PasswordHasher,
	tokens TokenSigner,
	revoker Revoker,
	defaultBaseID int64,
	log logging.Logger,
) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		hasher:        hasher,
		tokens:        tokens,
		revoker:       revoker,
		defaultBaseID: defaultBaseID,
		log:           log.With("module", "auth"),
		now:           time.Now,
	}
}

// Login looks the user up by email, verifies the password and returns a
// signed access token. Unknown emails are common.ErrorNotFound; a wrong
// password or an inactive account is common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "login for unknown email", "email", email)
			return "", fmt.Errorf("%w: no user found for email: %s", common.ErrorNotFound, email)
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.log.Warn(ctx, "invalid password", "email", email)
		return "", fmt.Errorf("%w: invalid password", common.ErrorUnauthorized)
	}
	if !user.IsActive {
		s.log.Warn(ctx, "login for inactive user", "email", email)
		return "", fmt.Errorf("%w: user is inactive", common.ErrorUnauthorized)
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return token, nil
}

// Register creates an active user in the default base.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	user, err := createUser(ctx, s.repomanager.Users(s.db), s.hasher, email, password, name, s.defaultBaseID)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			s.log.Warn(ctx, "registration for existing email", "email", email)
		}
		return nil, err
	}
	s.log.Info(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// LogoutEnabled reports whether tokens can be revoked.
func (s *AuthService) LogoutEnabled() bool {
	return s.revoker != nil
}

// Logout revokes the token described by claims for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.revoker == nil {
		return fmt.Errorf("%w: logout is disabled", common.ErrorBadRequest)
	}
	if claims == nil || claims.ExpiresAt == nil {
		return fmt.Errorf("%w: token has no expiry", common.ErrorBadRequest)
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	s.log.Info(ctx, "user logged out", "user_id", claims.Subject)
	return nil
}
