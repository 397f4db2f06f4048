package repository

import (
	"context"

	"luxestore/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID returns (nil, nil) when the profile document does not exist.
	GetByID(ctx context.Context, uid string) (*entity.User, error)
	UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) error
	SetConnectedWallets(ctx context.Context, uid string, wallets map[string]bool) error
	FindByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.User, int64, error)
}
