//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	addr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(addr)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisTokenStore(t *testing.T) {
	ctx := context.Background()
	client := newRedis(t)
	store := NewRedisTokenStore(client)

	require.NoError(t, store.Store(ctx, jwt.AccessToken, 1, "a1", time.Minute))
	require.NoError(t, store.Store(ctx, jwt.RefreshToken, 1, "r1", time.Minute))
	require.NoError(t, store.Store(ctx, jwt.AccessToken, 12, "a2", time.Minute))

	ttl, err := client.TTL(ctx, "access_token:1:a1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	ok, err := store.Exists(ctx, jwt.AccessToken, 1, "a1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Revoke(ctx, jwt.AccessToken, 1, "a1"))
	ok, _ = store.Exists(ctx, jwt.AccessToken, 1, "a1")
	assert.False(t, ok)

	require.NoError(t, store.RevokeAll(ctx, 1))
	ok, _ = store.Exists(ctx, jwt.RefreshToken, 1, "r1")
	assert.False(t, ok)

	ok, _ = store.Exists(ctx, jwt.AccessToken, 12, "a2")
	assert.True(t, ok, "user 12 shares the prefix digit but keeps its tokens")
}
