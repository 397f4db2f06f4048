package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/usecase"
)

// CartHeader carries an anonymous browser's cart session, a UUID the
// browser generates. Signed-in shoppers always use their own cart; the
// header then only names a guest cart to merge at sign-in.
const CartHeader = "X-Cart-ID"

var (
	authHandler     *AuthHandler
	shopHandler     *ShopHandler
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
	accountHandler  *AccountHandler
	settingsHandler *SettingsHandler
	adminHandler    *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	shopUseCase *usecase.ShopUseCase,
	cartUseCase *usecase.CartUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	accountUseCase *usecase.AccountUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	productUseCase *usecase.ProductUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase, cartUseCase)
	shopHandler = NewShopHandler(shopUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
	accountHandler = NewAccountHandler(accountUseCase)
	settingsHandler = NewSettingsHandler(settingsUseCase)
	adminHandler = NewAdminHandler(adminUseCase, productUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetShopHandler() *ShopHandler {
	return shopHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetAccountHandler() *AccountHandler {
	return accountHandler
}

func GetSettingsHandler() *SettingsHandler {
	return settingsHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func cartID(c echo.Context) string {
	if uid := middleware.UID(c); uid != "" {
		return usecase.UserCartID(uid)
	}
	return guestCartID(c)
}

func guestCartID(c echo.Context) string {
	return usecase.GuestCartID(strings.TrimSpace(c.Request().Header.Get(CartHeader)))
}
