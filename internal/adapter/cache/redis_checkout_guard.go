package cache

import (
	"context"
	"time"

	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisCheckoutGuard is the in-flight submission flag. SETNX with a TTL so a
// crashed submission can never wedge a cart permanently.
type RedisCheckoutGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCheckoutGuard(rdb *redis.Client, ttl time.Duration) *RedisCheckoutGuard {
	return &RedisCheckoutGuard{rdb: rdb, ttl: ttl}
}

func (g *RedisCheckoutGuard) TryLock(ctx context.Context, cartID string) (bool, error) {
	return g.rdb.SetNX(ctx, "checkout:inflight:"+cartID, "1", g.ttl).Result()
}

func (g *RedisCheckoutGuard) Release(ctx context.Context, cartID string) error {
	return g.rdb.Del(ctx, "checkout:inflight:"+cartID).Err()
}

var _ usecase.CheckoutGuard = (*RedisCheckoutGuard)(nil)
