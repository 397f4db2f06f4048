package router

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/handler"
	"luxestore/internal/adapter/api/middleware"
)

// SetupWebSocketRouter registers the admin live order feed.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	e.GET("/v1/admin/ws", wsHandler.HandleAdminFeed,
		middleware.QueryToken,
		authMiddleware.Authenticate,
		adminMiddleware.AdminOnly,
	)
}
