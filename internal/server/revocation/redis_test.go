package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRevokeAndCheck(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	revoked, err := s.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "abc", time.Minute))

	revoked, err = s.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, time.Minute, mr.TTL("ari:revoked:abc"))

	mr.FastForward(2 * time.Minute)
	revoked, err = s.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked, "entry expires with the token")
}

func TestRevoke_NonPositiveTTLIsNoop(t *testing.T) {
	s, mr := newStore(t)

	require.NoError(t, s.Revoke(context.Background(), "old", 0))
	assert.False(t, mr.Exists("ari:revoked:old"))
}

func TestRevoke_EmptyID(t *testing.T) {
	s, _ := newStore(t)
	require.Error(t, s.Revoke(context.Background(), "", time.Minute))
}

func TestRedisDown(t *testing.T) {
	s, mr := newStore(t)
	mr.Close()

	_, err := s.IsRevoked(context.Background(), "abc")
	require.Error(t, err)
	require.Error(t, s.Revoke(context.Background(), "abc", time.Minute))
	require.Error(t, s.Ping(context.Background()))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	c, err := NewClient(context.Background(), addr, "")
	require.NoError(t, err)
	_ = c.Close()

	mr.Close()
	_, err = NewClient(context.Background(), addr, "")
	require.Error(t, err)
}
