package usecase

import (
	"context"
	"time"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/internal/domain/service"
	"luxestore/internal/infrastructure/metrics"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
)

type CheckoutUseCase struct {
	carts    repository.CartRepository
	locks    *CartLocks
	users    repository.UserRepository
	gateway  service.OrderGateway
	notifier OrderNotifier
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewCheckoutUseCase(
	carts repository.CartRepository,
	locks *CartLocks,
	users repository.UserRepository,
	gateway service.OrderGateway,
	notifier OrderNotifier,
	m *metrics.Metrics,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:    carts,
		locks:    locks,
		users:    users,
		gateway:  gateway,
		notifier: notifier,
		metrics:  m,
		now:      time.Now,
	}
}

// Backend names the order store this deployment writes to.
func (uc *CheckoutUseCase) Backend() string {
	return uc.gateway.Name()
}

// Prefill returns contact fields from the shopper's profile. A missing
// profile yields an empty form.
func (uc *CheckoutUseCase) Prefill(ctx context.Context, uid string) (entity.CheckoutContact, error) {
	if uid == "" {
		return entity.CheckoutContact{}, errors.Unauthorized("Please login to checkout", nil)
	}

	user, err := uc.users.GetByID(ctx, uid)
	if err != nil {
		logger.Error("Error loading profile %s for checkout: %v", uid, err)
		return entity.CheckoutContact{}, nil
	}
	if user == nil {
		return entity.CheckoutContact{}, nil
	}

	return entity.CheckoutContact{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Address:   user.Address,
		City:      user.City,
		Zip:       user.Zip,
	}, nil
}

// PlaceOrder turns the signed-in user's cart into an order. Authentication
// and an empty cart are checked before anything is written. The cart lock is
// held from load to clear so lines added meanwhile wait for the next cart
// instead of being wiped. On failure the cart is left as it was.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, uid string, contact entity.CheckoutContact) (*entity.Order, error) {
	if uid == "" {
		return nil, errors.Unauthorized("Please login to checkout", nil)
	}
	cartID := UserCartID(uid)

	unlock := uc.locks.Lock(cartID)
	defer unlock()

	cart, err := uc.carts.Load(ctx, cartID)
	if err != nil {
		logger.Error("Error loading cart %s for checkout: %v", cartID, err)
		return nil, errors.Internal("Failed to load cart", err)
	}
	if cart.IsEmpty() {
		return nil, errors.EmptyCart()
	}

	order := &entity.Order{
		UserID:       uid,
		CustomerName: contact.FullName(),
		Email:        contact.Email,
		Items:        cart.Snapshot(),
		Total:        cart.Total(),
		Status:       entity.OrderStatusProcessing,
		CreatedAt:    uc.now(),
		ShippingAddress: entity.ShippingAddress{
			Address: contact.Address,
			City:    contact.City,
			Zip:     contact.Zip,
		},
	}

	backend := uc.gateway.Name()
	id, err := uc.gateway.Submit(ctx, service.OrderSubmission{Order: order, Contact: contact})
	if err != nil {
		logger.Error("Error placing order on %s: %v", backend, err)
		uc.metrics.OrderFailed(backend)
		return nil, errors.OrderFailed(err)
	}
	order.ID = id

	if err := uc.carts.Clear(ctx, cartID); err != nil {
		logger.LogOrderError(id, "clear_cart", err)
	}

	uc.metrics.OrderPlaced(backend, order.Total)
	if uc.notifier != nil {
		uc.notifier.NotifyOrderCreated(order)
	}
	logger.Info("Order %s placed on %s: %d items, total %.2f", id, backend, cart.Count(), order.Total)
	return order, nil
}
