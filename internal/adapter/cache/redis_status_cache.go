package cache

import (
	"context"
	"errors"
	"time"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/redis/go-redis/v9"
)

type RedisStatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStatusCache(rdb *redis.Client, ttl time.Duration) *RedisStatusCache {
	return &RedisStatusCache{rdb: rdb, ttl: ttl}
}

func (r *RedisStatusCache) SetStatus(ctx context.Context, orderNumber string, status domain.Status) error {
	return r.rdb.Set(ctx, "order:status:"+orderNumber, string(status), r.ttl).Err()
}

func (r *RedisStatusCache) GetStatus(ctx context.Context, orderNumber string) (domain.Status, bool, error) {
	val, err := r.rdb.Get(ctx, "order:status:"+orderNumber).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	st, err := domain.ParseStatus(val)
	if err != nil {
		return "", false, nil
	}
	return st, true, nil
}

var _ usecase.StatusCache = (*RedisStatusCache)(nil)
