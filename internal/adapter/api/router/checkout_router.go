package router

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/handler"
	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/infrastructure/ratelimit"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")

	checkout.GET("/prefill", checkoutHandler.Prefill, authMiddleware.Authenticate)
	// Optional so an anonymous shopper gets the login prompt from the handler.
	checkout.POST("", checkoutHandler.PlaceOrder, authMiddleware.Optional, middleware.RateLimit(limiter, ratelimit.ActionCheckout))
}
