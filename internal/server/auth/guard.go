package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/server/models"
)

// TokenVerifier turns a bearer token into claims.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// UserFinder resolves a token subject to a credential record.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	User   *models.User
	Claims *Claims
}

// Guard authenticates requests by their Authorization header.
type Guard struct {
	tokens  TokenVerifier
	users   UserFinder
	revoked RevocationChecker
}

// NewGuard builds a Guard. revoked may be nil when logout is disabled.
func NewGuard(tokens TokenVerifier, users UserFinder, revoked RevocationChecker) *Guard {
	return &Guard{tokens: tokens, users: users, revoked: revoked}
}

// ExtractBearer returns the token of a "Bearer <token>" header value. The
// scheme is matched case-insensitively.
func ExtractBearer(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerScheme) {
		return "", fmt.Errorf("%w: malformed authorization header", common.ErrorUnauthorized)
	}
	return parts[1], nil
}

// Authenticate runs the header through extraction, verification, revocation
// and identity lookup. Any failure is terminal and wraps
// common.ErrorUnauthorized.
func (g *Guard) Authenticate(ctx context.Context, header string) (*Identity, error) {
	token, err := ExtractBearer(header)
	if err != nil {
		return nil, err
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}

	if g.revoked != nil {
		revoked, err := g.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: revocation check: %v", common.ErrorUnauthorized, err)
		}
		if revoked {
			return nil, fmt.Errorf("%w: token revoked", common.ErrorUnauthorized)
		}
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}

	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: identity lookup: %v", common.ErrorUnauthorized, err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is inactive", common.ErrorUnauthorized)
	}

	return &Identity{User: user, Claims: claims}, nil
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored by WithIdentity, if any.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
