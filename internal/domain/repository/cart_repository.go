package repository

import (
	"context"

	"luxestore/internal/domain/entity"
)

// CartRepository is the durable cart mirror: one serialized snapshot per cart session.
type CartRepository interface {
	// Load returns an empty cart when nothing, or nothing readable, is stored.
	Load(ctx context.Context, cartID string) (entity.Cart, error)
	Save(ctx context.Context, cartID string, cart entity.Cart) error
	Clear(ctx context.Context, cartID string) error
}
