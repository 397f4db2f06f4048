package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestore/internal/domain/entity"
	"luxestore/pkg/errors"
)

func TestAdminUseCase_Stats(t *testing.T) {
	orders := &fakeOrderRepo{orders: []*entity.Order{
		{ID: "o1", Total: 100, Status: entity.OrderStatusProcessing},
		{ID: "o2", Total: 250, Status: entity.OrderStatusDelivered},
		{ID: "o3", Total: 999, Status: entity.OrderStatusCancelled},
		{ID: "o4", Total: 50, Status: entity.OrderStatusPending},
	}}
	users := newFakeUserRepo(
		&entity.User{UID: "u1", Role: entity.RoleCustomer},
		&entity.User{UID: "u2", Role: entity.RoleCustomer},
		&entity.User{UID: "a1", Role: entity.RoleAdmin},
	)
	uc := NewAdminUseCase(orders, users)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.OrderCount)
	assert.Equal(t, 400.0, stats.Revenue)
	assert.Equal(t, int64(2), stats.CustomerCount)
	assert.Equal(t, int64(1), stats.OrdersByStatus[entity.OrderStatusCancelled])
	assert.Equal(t, int64(1), stats.OrdersByStatus[entity.OrderStatusProcessing])

	orders.err = errBackend
	_, err = uc.Stats(context.Background())
	assert.True(t, errors.Is(err, errors.CodeInternal))
}

func TestAdminUseCase_ListCustomers(t *testing.T) {
	users := newFakeUserRepo(
		&entity.User{UID: "u1", Role: entity.RoleCustomer},
		&entity.User{UID: "u2", Role: entity.RoleCustomer},
		&entity.User{UID: "a1", Role: entity.RoleAdmin},
	)
	uc := NewAdminUseCase(&fakeOrderRepo{}, users)

	page, total, err := uc.ListCustomers(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, "u2", page[0].UID)
}

func TestProductUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("upload routes to a known folder", func(t *testing.T) {
		store := &fakeImageStore{}
		uc := NewProductUseCase(nil, store)

		url, err := uc.UploadImage(ctx, UploadImageInput{File: bytes.NewReader([]byte("png")), ContentType: "image/png", Folder: "hero"})
		require.NoError(t, err)
		assert.Contains(t, url, "/images/hero/")
		assert.Equal(t, "hero", store.folder)

		_, err = uc.UploadImage(ctx, UploadImageInput{File: bytes.NewReader(nil), ContentType: "image/png", Folder: "../etc"})
		assert.True(t, errors.Is(err, errors.CodeBadRequest))
	})

	t.Run("uploads disabled without a bucket", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.UploadImage(ctx, UploadImageInput{Folder: "hero"})
		assert.Error(t, err)
	})
}
