package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rc := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), ttl)
	t.Cleanup(func() { _ = rc.Close() })
	return rc, mr
}

func TestRedisRoundTrip(t *testing.T) {
	rc, mr := setupRedis(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, rc.Ping(ctx))

	_, found, err := rc.Get(ctx, "CERT-20261018-0A1B2C3D4E")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, rc.Set(ctx, "CERT-20261018-0A1B2C3D4E", []byte{0xff, 0xd8, 0xff}))
	assert.True(t, mr.Exists(keyPrefix+"CERT-20261018-0A1B2C3D4E"))

	data, found, err := rc.Get(ctx, "CERT-20261018-0A1B2C3D4E")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)

	require.NoError(t, rc.Delete(ctx, "CERT-20261018-0A1B2C3D4E"))
	_, found, err = rc.Get(ctx, "CERT-20261018-0A1B2C3D4E")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisTTL(t *testing.T) {
	rc, mr := setupRedis(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "CERT-1", []byte("x")))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"CERT-1"))

	mr.FastForward(2 * time.Minute)

	_, found, err := rc.Get(ctx, "CERT-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisUnavailable(t *testing.T) {
	rc, mr := setupRedis(t, time.Minute)
	mr.Close()

	_, _, err := rc.Get(context.Background(), "CERT-1")
	assert.Error(t, err)
}

func TestNewRedisInvalidURL(t *testing.T) {
	_, err := NewRedis("http://not-redis", time.Minute)
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var c ImageCache = Noop{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("b")))
	_, found, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(ctx, "a"))
}
