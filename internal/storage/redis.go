package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps values under "folio:<profile>:<key>" with an optional expiry
// that is refreshed on every write.
type Redis struct {
	client  redis.Cmdable
	profile string
	ttl     time.Duration
}

// NewRedis returns a Storage bound to profile. A ttl of zero keeps keys forever.
func NewRedis(client redis.Cmdable, profile string, ttl time.Duration) *Redis {
	return &Redis{client: client, profile: strings.TrimSpace(profile), ttl: ttl}
}

func (r *Redis) key(key string) string {
	return fmt.Sprintf("folio:%s:%s", r.profile, key)
}

func (r *Redis) ready() error {
	if r == nil || r.client == nil {
		return fmt.Errorf("%w: redis not configured", ErrUnavailable)
	}
	if r.profile == "" {
		return fmt.Errorf("%w: missing visitor profile", ErrUnavailable)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	if err := r.ready(); err != nil {
		return "", false, err
	}
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w: %w", key, ErrUnavailable, err)
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.ready(); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w: %w", key, ErrUnavailable, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.ready(); err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w: %w", key, ErrUnavailable, err)
	}
	return nil
}
