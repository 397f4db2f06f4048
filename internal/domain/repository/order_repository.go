package repository

import (
	"context"

	"luxestore/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// ListByUserID returns a user's orders, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*entity.Order, error)
	// List returns all orders newest first; limit <= 0 means no limit.
	List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error)
}
