package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService is a small JSON cache on top of a Redis client.
type RedisService struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisService(rdb *redis.Client, prefix string) *RedisService {
	return &RedisService{
		rdb:    rdb,
		prefix: prefix,
	}
}

func (a *RedisService) Ping(ctx context.Context) error {
	return a.rdb.Ping(ctx).Err()
}

// key namespaces k under the prefix, separated by a single colon.
func (a *RedisService) key(k string) string {
	if a.prefix == "" {
		return k
	}
	return strings.TrimSuffix(a.prefix, ":") + ":" + k
}

// GetJSON decodes the value under key into dst. A missing key reports false without error.
func (a *RedisService) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := a.rdb.Get(ctx, a.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value under key for ttl.
func (a *RedisService) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := a.rdb.Set(ctx, a.key(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
