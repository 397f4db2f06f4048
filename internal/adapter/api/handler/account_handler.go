package handler

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/domain/entity"
	"luxestore/internal/usecase"
	"luxestore/pkg/errors"
	"luxestore/pkg/response"
)

type AccountHandler struct {
	accountUseCase *usecase.AccountUseCase
}

func NewAccountHandler(accountUseCase *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
	}
}

type updateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"max=32"`
	Country   string `json:"country" validate:"max=64"`
	Address   string `json:"address" validate:"max=256"`
	City      string `json:"city" validate:"max=128"`
	Zip       string `json:"zip" validate:"max=16"`
}

func (h *AccountHandler) GetProfile(c echo.Context) error {
	user, err := h.accountUseCase.GetProfile(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.accountUseCase.UpdateProfile(c.Request().Context(), middleware.UID(c), entity.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Country:   req.Country,
		Address:   req.Address,
		City:      req.City,
		Zip:       req.Zip,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AccountHandler) ListOrders(c echo.Context) error {
	orders, err := h.accountUseCase.ListOrders(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *AccountHandler) PaymentMethods(c echo.Context) error {
	methods, err := h.accountUseCase.PaymentMethods(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, methods)
}

func (h *AccountHandler) ToggleWallet(c echo.Context) error {
	wallets, err := h.accountUseCase.ToggleWallet(c.Request().Context(), middleware.UID(c), c.Param("provider"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"connectedWallets": wallets,
	})
}
