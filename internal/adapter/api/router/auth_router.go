package router

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/handler"
	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/infrastructure/ratelimit"
)

func SetupAuthRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/auth/register", authHandler.Register, middleware.RateLimit(limiter, ratelimit.ActionRegister))
	e.POST("/v1/auth/login", authHandler.Login, middleware.RateLimit(limiter, ratelimit.ActionLogin))
}
