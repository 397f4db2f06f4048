package router

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/infrastructure/ratelimit"
)

// Options selects the routes that depend on deployment configuration.
type Options struct {
	// OrdersInStore is false when orders live in WooCommerce, in which case
	// the order listing routes are not served.
	OrdersInStore bool
}

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	limiter *ratelimit.RateLimiter,
	opts Options,
) {
	SetupAuthRouter(e, limiter)
	SetupShopRouter(e, authMiddleware)
	SetupCheckoutRouter(e, authMiddleware, limiter)
	SetupAccountRouter(e, authMiddleware, opts)
	SetupSettingsRouter(e)
	SetupAdminRouter(e, authMiddleware, adminMiddleware, opts)
	SetupHealthRouter(e)
}
