package usecase

import (
	"context"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/internal/domain/service"
	"luxestore/internal/infrastructure/metrics"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
)

type CartUseCase struct {
	catalog service.CatalogSource
	carts   repository.CartRepository
	locks   *CartLocks
	metrics *metrics.Metrics
}

func NewCartUseCase(catalog service.CatalogSource, carts repository.CartRepository, locks *CartLocks, m *metrics.Metrics) *CartUseCase {
	return &CartUseCase{
		catalog: catalog,
		carts:   carts,
		locks:   locks,
		metrics: m,
	}
}

type AddToCartInput struct {
	ProductID string
	Size      string
	Color     string
}

// CartView is a cart plus the values derived from it.
type CartView struct {
	Items []entity.LineItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func NewCartView(cart entity.Cart) CartView {
	return CartView{
		Items: cart.Snapshot(),
		Total: cart.Total(),
		Count: cart.Count(),
	}
}

func (uc *CartUseCase) GetCart(ctx context.Context, cartID string) (entity.Cart, error) {
	if cartID == "" {
		return entity.NewCart(), nil
	}

	cart, err := uc.carts.Load(ctx, cartID)
	if err != nil {
		logger.Error("Error loading cart %s: %v", cartID, err)
		return entity.Cart{}, errors.Internal("Failed to load cart", err)
	}
	return cart, nil
}

// AddToCart merges the chosen variant into the cart and writes the whole
// cart back before returning.
func (uc *CartUseCase) AddToCart(ctx context.Context, cartID string, input AddToCartInput) (entity.Cart, error) {
	if cartID == "" {
		return entity.Cart{}, errors.BadRequest("Missing cart session", nil)
	}

	product := uc.catalog.GetProduct(ctx, input.ProductID)
	if product == nil {
		return entity.Cart{}, errors.NotFound("Product", nil)
	}

	unlock := uc.locks.Lock(cartID)
	defer unlock()

	cart, err := uc.GetCart(ctx, cartID)
	if err != nil {
		return entity.Cart{}, err
	}

	cart = cart.Add(*product, input.Size, input.Color)
	if err := uc.carts.Save(ctx, cartID, cart); err != nil {
		logger.Error("Error saving cart %s: %v", cartID, err)
		return entity.Cart{}, errors.Internal("Failed to save cart", err)
	}

	uc.metrics.CartAdded()
	return cart, nil
}

// MergeGuestCart moves a guest session's lines into the user's cart after
// sign-in. The guest cart is cleared once the user cart is saved.
func (uc *CartUseCase) MergeGuestCart(ctx context.Context, guestCartID, uid string) (entity.Cart, error) {
	userCartID := UserCartID(uid)
	if userCartID == "" {
		return entity.Cart{}, errors.Unauthorized("Authentication required", nil)
	}
	if guestCartID == "" {
		return uc.GetCart(ctx, userCartID)
	}

	// Guest before user, always, so two merges cannot deadlock.
	unlockGuest := uc.locks.Lock(guestCartID)
	defer unlockGuest()
	unlockUser := uc.locks.Lock(userCartID)
	defer unlockUser()

	guest, err := uc.GetCart(ctx, guestCartID)
	if err != nil {
		return entity.Cart{}, err
	}
	cart, err := uc.GetCart(ctx, userCartID)
	if err != nil {
		return entity.Cart{}, err
	}
	if guest.IsEmpty() {
		return cart, nil
	}

	cart = cart.Merge(guest)
	if err := uc.carts.Save(ctx, userCartID, cart); err != nil {
		logger.Error("Error saving cart %s: %v", userCartID, err)
		return entity.Cart{}, errors.Internal("Failed to save cart", err)
	}
	if err := uc.carts.Clear(ctx, guestCartID); err != nil {
		logger.Warn("Guest cart %s merged but not cleared: %v", guestCartID, err)
	}

	logger.Debug("Merged %d guest lines into %s", len(guest.Items), userCartID)
	return cart, nil
}
