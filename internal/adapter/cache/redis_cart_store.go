package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/logging"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each cart as a single JSON blob under one key.
// The cart has exactly one writer (the visitor it belongs to); last write
// wins and no locking is attempted.
type RedisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{rdb: rdb, ttl: ttl}
}

func key(cartID string) string { return "cart:" + cartID }

// Load returns an empty cart when the key is missing, and also when the blob
// fails to decode: a corrupt cart is "no prior data", logged, never a crash.
// It deliberately does not write the empty cart back.
func (s *RedisCartStore) Load(ctx context.Context, cartID string) (*domain.Cart, error) {
	raw, err := s.rdb.Get(ctx, key(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewCart(cartID), nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		logging.FromCtx(ctx).Warn("cart blob unreadable, starting empty", "cart_id", cartID, "err", err)
		return domain.NewCart(cartID), nil
	}
	cart.ID = cartID
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(cart.ID), raw, s.ttl).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	return s.rdb.Del(ctx, key(cartID)).Err()
}

var _ usecase.CartStore = (*RedisCartStore)(nil)
