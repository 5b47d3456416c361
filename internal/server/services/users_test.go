package services

import (
	"context"
	"testing"

	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserService_CRUD(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	alice, err := f.users.Create(ctx, "alice@prisma.io", "password123", "Alice")
	require.NoError(t, err)
	bob, err := f.users.Create(ctx, "bob@prisma.io", "password456", "Bob")
	require.NoError(t, err)

	_, err = f.users.Create(ctx, "bob@prisma.io", "password456", "Bob")
	require.ErrorIs(t, err, common.ErrorConflict)

	all, err := f.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, alice.ID, all[0].ID)

	got, err := f.users.Get(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)

	require.NoError(t, f.users.Delete(ctx, bob.ID))
	_, err = f.users.Get(ctx, bob.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.ErrorIs(t, f.users.Delete(ctx, bob.ID), common.ErrorNotFound)
}

func TestUserService_UpdateKeepsHashUnlessPasswordChanges(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	u, err := f.users.Create(ctx, "alice@example.com", "s3cret!", "Alice")
	require.NoError(t, err)
	originalHash := u.PasswordHash

	renamed, err := f.users.Update(ctx, u.ID, models.UserPatch{Name: strPtr("Alicia")})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", renamed.Name)
	assert.Equal(t, originalHash, renamed.PasswordHash)

	changed, err := f.users.Update(ctx, u.ID, models.UserPatch{Password: strPtr("n3w-pass")})
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, changed.PasswordHash)

	_, err = f.auth.Login(ctx, "alice@example.com", "s3cret!")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = f.auth.Login(ctx, "alice@example.com", "n3w-pass")
	require.NoError(t, err)
}

func TestUserService_UpdateMissing(t *testing.T) {
	f := newFixture()
	_, err := f.users.Update(context.Background(), 404, models.UserPatch{Name: strPtr("x")})
	require.ErrorIs(t, err, common.ErrorNotFound)
}
