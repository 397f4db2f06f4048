package handler

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/domain/entity"
	"luxestore/internal/usecase"
	"luxestore/pkg/errors"
	"luxestore/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type checkoutRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
}

func (h *CheckoutHandler) Prefill(c echo.Context) error {
	contact, err := h.checkoutUseCase.Prefill(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, contact)
}

// PlaceOrder checks sign-in before reading the body so an anonymous shopper
// gets the login prompt rather than form errors.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	uid := middleware.UID(c)
	if uid == "" {
		return response.Error(c, errors.Unauthorized("Please login to checkout", nil))
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.checkoutUseCase.PlaceOrder(c.Request().Context(), uid, entity.CheckoutContact{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Zip:       req.Zip,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}
