package handler

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/settings"
	"luxestore/internal/usecase"
	"luxestore/pkg/response"
)

type ShopHandler struct {
	shopUseCase *usecase.ShopUseCase
}

func NewShopHandler(shopUseCase *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{
		shopUseCase: shopUseCase,
	}
}

type stateResponse struct {
	Products        []entity.Product  `json:"products"`
	Cart            usecase.CartView  `json:"cart"`
	User            *entity.User      `json:"user"`
	Config          entity.SiteConfig `json:"config"`
	IsAuthenticated bool              `json:"isAuthenticated"`
}

func (h *ShopHandler) ListProducts(c echo.Context) error {
	return response.Success(c, h.shopUseCase.ListProducts(c.Request().Context()))
}

func (h *ShopHandler) GetProduct(c echo.Context) error {
	product, err := h.shopUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

// GetState returns everything a storefront page needs in one call.
func (h *ShopHandler) GetState(c echo.Context) error {
	state, err := h.shopUseCase.LoadState(c.Request().Context(), cartID(c), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stateResponse{
		Products:        state.Products,
		Cart:            usecase.NewCartView(state.Cart),
		User:            state.User,
		Config:          settings.Public(state.Config),
		IsAuthenticated: state.IsAuthenticated(),
	})
}
