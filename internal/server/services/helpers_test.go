package services

import (
	"context"
	"sync"
	"time"

	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/auth"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/memory"
	"golang.org/x/crypto/bcrypt"
)

type fakeRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func (f *fakeRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.revoked == nil {
		f.revoked = map[string]time.Duration{}
	}
	f.revoked[jti] = ttl
	return nil
}

// countingHasher records how often the hash comparison runs.
type countingHasher struct {
	auth.PasswordHasher
	mu       sync.Mutex
	verifies int
}

func (h *countingHasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	h.mu.Lock()
	h.verifies++
	h.mu.Unlock()
	return h.PasswordHasher.Verify(ctx, plaintext, hash)
}

type fixture struct {
	repos   *memory.Manager
	hasher  *countingHasher
	tokens  *auth.TokenIssuer
	revoker *fakeRevoker
	auth    *AuthService
	users   *UserService
}

func newFixture() *fixture {
	f := &fixture{
		repos:   memory.NewManager(),
		hasher:  &countingHasher{PasswordHasher: auth.NewBcryptHasher(bcrypt.MinCost)},
		tokens:  auth.NewTokenIssuer([]byte("k"), time.Hour),
		revoker: &fakeRevoker{},
	}
	f.auth = NewAuthService(nil, f.repos, f.hasher, f.tokens, f.revoker, 1, logging.Nop())
	f.users = NewUserService(nil, f.repos, f.hasher, 1, logging.Nop())
	return f
}
