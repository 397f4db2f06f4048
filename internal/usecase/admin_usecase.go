package usecase

import (
	"context"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
)

type AdminUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewAdminUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository) *AdminUseCase {
	return &AdminUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// Stats summarises the store for the admin dashboard.
type Stats struct {
	OrderCount     int64                        `json:"order_count"`
	Revenue        float64                      `json:"revenue"`
	CustomerCount  int64                        `json:"customer_count"`
	OrdersByStatus map[entity.OrderStatus]int64 `json:"orders_by_status"`
}

func (uc *AdminUseCase) ListOrders(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	orders, total, err := uc.orderRepo.List(ctx, limit, offset)
	if err != nil {
		logger.Error("Error fetching orders: %v", err)
		return nil, 0, errors.Internal("Failed to load orders", err)
	}
	return orders, total, nil
}

func (uc *AdminUseCase) ListCustomers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	users, total, err := uc.userRepo.FindByField(ctx, "role", entity.RoleCustomer, limit, offset)
	if err != nil {
		logger.Error("Error fetching customers: %v", err)
		return nil, 0, errors.Internal("Failed to load customers", err)
	}
	if users == nil {
		users = []*entity.User{}
	}
	return users, total, nil
}

// Stats counts every order. Cancelled orders are excluded from revenue.
func (uc *AdminUseCase) Stats(ctx context.Context) (*Stats, error) {
	orders, total, err := uc.ListOrders(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	_, customers, err := uc.ListCustomers(ctx, 1, 0)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		OrderCount:     total,
		CustomerCount:  customers,
		OrdersByStatus: make(map[entity.OrderStatus]int64, len(entity.OrderStatuses)),
	}
	for _, status := range entity.OrderStatuses {
		stats.OrdersByStatus[status] = 0
	}
	for _, order := range orders {
		stats.OrdersByStatus[order.Status]++
		if order.Status != entity.OrderStatusCancelled {
			stats.Revenue += order.Total
		}
	}
	return stats, nil
}
