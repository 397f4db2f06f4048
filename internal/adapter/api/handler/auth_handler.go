package handler

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/usecase"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
	"luxestore/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	cartUseCase *usecase.CartUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, cartUseCase *usecase.CartUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cartUseCase: cartUseCase,
	}
}

// adoptGuestCart folds the browser's guest cart into the account that just
// signed in. A failure leaves the guest cart in place.
func (h *AuthHandler) adoptGuestCart(c echo.Context, result *usecase.AuthResult) {
	guest := guestCartID(c)
	if guest == "" {
		return
	}
	if _, err := h.cartUseCase.MergeGuestCart(c.Request().Context(), guest, result.UID); err != nil {
		logger.Warn("Guest cart %s not merged into %s: %v", guest, result.UID, err)
	}
}

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	h.adoptGuestCart(c, result)
	return response.Created(c, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	h.adoptGuestCart(c, result)
	return response.Success(c, result)
}
