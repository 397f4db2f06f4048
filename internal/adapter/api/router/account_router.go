package router

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/handler"
	"luxestore/internal/adapter/api/middleware"
)

func SetupAccountRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, opts Options) {
	accountHandler := handler.GetAccountHandler()

	account := e.Group("/v1/account")
	account.Use(authMiddleware.Authenticate)

	account.GET("/profile", accountHandler.GetProfile)
	account.PUT("/profile", accountHandler.UpdateProfile)
	account.GET("/payment-methods", accountHandler.PaymentMethods)
	account.POST("/wallets/:provider/toggle", accountHandler.ToggleWallet)

	if opts.OrdersInStore {
		account.GET("/orders", accountHandler.ListOrders)
	}
}
