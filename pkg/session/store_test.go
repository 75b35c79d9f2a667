package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-id-card-generation/pkg/session"
)

func newStore(t *testing.T, ttl time.Duration) (session.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return session.NewRedisStore(rdb, ttl), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, time.Hour)

	id, err := store.Create(ctx, session.Data{UserID: "u-1", Name: "Admin", Role: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.True(t, mr.Exists("session:"+id))

	data, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "u-1", data.UserID)
	assert.Equal(t, "admin", data.Role)
	assert.False(t, data.CreatedAt.IsZero())

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, time.Minute)

	id, err := store.Create(ctx, session.Data{UserID: "u-1"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStoreSlidingTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, time.Minute)

	id, err := store.Create(ctx, session.Data{UserID: "u-1"})
	require.NoError(t, err)

	mr.FastForward(45 * time.Second)
	_, err = store.Get(ctx, id)
	require.NoError(t, err)

	mr.FastForward(45 * time.Second)
	_, err = store.Get(ctx, id)
	assert.NoError(t, err, "reading a session must extend its lifetime")
}

func TestSigner(t *testing.T) {
	s := session.NewSigner("dev-secret-change-me")

	signed := s.Sign("abc-123")
	id, err := s.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)

	_, err = session.NewSigner("other-secret").Verify(signed)
	assert.ErrorIs(t, err, session.ErrInvalidSignature)

	for _, bad := range []string{"", "abc-123", "abc-123.", ".sig", "abc-123.!!!"} {
		_, err := s.Verify(bad)
		assert.ErrorIs(t, err, session.ErrInvalidSignature, bad)
	}
}
