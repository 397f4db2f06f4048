package repository

import (
	"context"
	"sync"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
)

// memoryCartRepository keeps serialized blobs, not live carts, so it behaves
// like the Redis mirror including the corrupt-blob path.
type memoryCartRepository struct {
	blobs map[string][]byte
	mutex sync.RWMutex
}

func NewMemoryCartRepository() repository.CartRepository {
	return &memoryCartRepository{
		blobs: make(map[string][]byte),
	}
}

func (r *memoryCartRepository) Load(ctx context.Context, cartID string) (entity.Cart, error) {
	r.mutex.RLock()
	data := r.blobs[cartKey(cartID)]
	r.mutex.RUnlock()

	return entity.DecodeCart(data), nil
}

func (r *memoryCartRepository) Save(ctx context.Context, cartID string, cart entity.Cart) error {
	data, err := entity.EncodeCart(cart)
	if err != nil {
		return err
	}

	r.mutex.Lock()
	r.blobs[cartKey(cartID)] = data
	r.mutex.Unlock()
	return nil
}

func (r *memoryCartRepository) Clear(ctx context.Context, cartID string) error {
	r.mutex.Lock()
	delete(r.blobs, cartKey(cartID))
	r.mutex.Unlock()
	return nil
}
