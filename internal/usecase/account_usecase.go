package usecase

import (
	"context"
	"net/http"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
)

type AccountUseCase struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	settings  *SettingsUseCase
}

func NewAccountUseCase(userRepo repository.UserRepository, orderRepo repository.OrderRepository, settings *SettingsUseCase) *AccountUseCase {
	return &AccountUseCase{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		settings:  settings,
	}
}

// WalletView is a visible payment provider and whether the user linked it.
type WalletView struct {
	entity.PaymentProvider
	Connected bool `json:"connected"`
}

func (uc *AccountUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		logger.Error("Error fetching profile %s: %v", uid, err)
		return nil, errors.Internal("Failed to load profile", err)
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (uc *AccountUseCase) UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) (*entity.User, error) {
	if _, err := uc.GetProfile(ctx, uid); err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateProfile(ctx, uid, update); err != nil {
		logger.Error("Error updating profile %s: %v", uid, err)
		return nil, errors.Internal("Error updating profile", err)
	}
	return uc.GetProfile(ctx, uid)
}

// ListOrders returns the user's order history, newest first.
func (uc *AccountUseCase) ListOrders(ctx context.Context, uid string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByUserID(ctx, uid)
	if err != nil {
		logger.Error("Error fetching orders for %s: %v", uid, err)
		return nil, errors.Internal("Failed to load orders", err)
	}
	return orders, nil
}

// PaymentMethods lists the visible providers with the user's connection state.
func (uc *AccountUseCase) PaymentMethods(ctx context.Context, uid string) ([]WalletView, error) {
	user, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	visible := uc.settings.Visibility(ctx)
	views := []WalletView{}
	for _, p := range entity.KnownProviders {
		if visible[p.ID] {
			views = append(views, WalletView{
				PaymentProvider: p,
				Connected:       user.ConnectedWallets[p.ID],
			})
		}
	}
	return views, nil
}

// ToggleWallet flips the connection flag of a visible provider and returns
// the new wallet map.
func (uc *AccountUseCase) ToggleWallet(ctx context.Context, uid, provider string) (map[string]bool, error) {
	if !uc.settings.Visibility(ctx)[provider] {
		return nil, errors.New(errors.CodeProviderDisabled, "This payment method is not available", http.StatusBadRequest, nil)
	}

	user, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	wallets := make(map[string]bool, len(user.ConnectedWallets)+1)
	for k, v := range user.ConnectedWallets {
		wallets[k] = v
	}
	wallets[provider] = !wallets[provider]

	if err := uc.userRepo.SetConnectedWallets(ctx, uid, wallets); err != nil {
		logger.Error("Error updating wallets for %s: %v", uid, err)
		return nil, errors.Internal("Failed to update payment method", err)
	}
	return wallets, nil
}
