package redissvc

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func unreachable(t *testing.T) *RedisService {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	svc := NewRedisService(rdb, "inventory:")
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestKeyPrefix(t *testing.T) {
	for _, prefix := range []string{"inventory", "inventory:"} {
		svc := NewRedisService(nil, prefix)
		assert.Equal(t, "inventory:analytics:fast-moving:2025-06-15:10", svc.key("analytics:fast-moving:2025-06-15:10"), "prefix %q", prefix)
	}
	assert.Equal(t, "analytics:slow-moving", NewRedisService(nil, "").key("analytics:slow-moving"))
}

func TestUnreachableServerReportsErrors(t *testing.T) {
	ctx := context.Background()
	svc := unreachable(t)

	assert.Error(t, svc.Ping(ctx))

	var dst []int
	found, err := svc.GetJSON(ctx, "k", &dst)
	assert.Error(t, err)
	assert.False(t, found)

	assert.Error(t, svc.SetJSON(ctx, "k", []int{1}, time.Minute))
}

func TestSetJSONRejectsUnencodableValues(t *testing.T) {
	svc := unreachable(t)
	err := svc.SetJSON(context.Background(), "k", make(chan int), time.Minute)
	assert.ErrorContains(t, err, "encode k")
}
