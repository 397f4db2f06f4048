package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/pkg/logger"
)

type redisCartRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCartRepository stores each cart as one JSON blob. A zero ttl keeps blobs forever.
func NewRedisCartRepository(client redis.Cmdable, ttl time.Duration) repository.CartRepository {
	return &redisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisCartRepository) Load(ctx context.Context, cartID string) (entity.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(cartID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewCart(), nil
		}
		return entity.NewCart(), err
	}

	cart := entity.DecodeCart(data)
	if cart.IsEmpty() && len(data) > 2 {
		logger.Warn("Discarding unreadable cart blob for %s", cartID)
	}
	return cart, nil
}

func (r *redisCartRepository) Save(ctx context.Context, cartID string, cart entity.Cart) error {
	data, err := entity.EncodeCart(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(cartID), data, r.ttl).Err()
}

func (r *redisCartRepository) Clear(ctx context.Context, cartID string) error {
	return r.client.Del(ctx, cartKey(cartID)).Err()
}
