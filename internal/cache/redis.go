package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "certgen:image:"

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the server described by url (redis://...).
func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse redis url")
	}

	return NewRedisWithClient(redis.NewClient(opts), ttl), nil
}

func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return errors.WithStack(r.client.Ping(ctx).Err())
}

// Get implements ImageCache.
func (r *Redis) Get(ctx context.Context, id string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.WithStack(err)
	}

	return data, true, nil
}

// Set implements ImageCache.
func (r *Redis) Set(ctx context.Context, id string, image []byte) error {
	return errors.WithStack(r.client.Set(ctx, keyPrefix+id, image, r.ttl).Err())
}

// Delete implements ImageCache.
func (r *Redis) Delete(ctx context.Context, id string) error {
	return errors.WithStack(r.client.Del(ctx, keyPrefix+id).Err())
}

func (r *Redis) Close() error {
	return errors.WithStack(r.client.Close())
}

var _ ImageCache = &Redis{}
