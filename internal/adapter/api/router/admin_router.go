package router

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/handler"
	"luxestore/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, opts Options) {
	adminHandler := handler.GetAdminHandler()
	settingsHandler := handler.GetSettingsHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/settings", settingsHandler.Get)
	admin.PUT("/settings", settingsHandler.Put)

	admin.GET("/settings/draft", settingsHandler.GetDraft)
	admin.PATCH("/settings/draft", settingsHandler.PatchDraft)
	admin.POST("/settings/draft/save", settingsHandler.SaveDraft)
	admin.DELETE("/settings/draft", settingsHandler.DiscardDraft)

	admin.POST("/products", adminHandler.CreateProduct)
	admin.POST("/uploads", adminHandler.UploadImage)

	admin.GET("/customers", adminHandler.ListCustomers)

	if opts.OrdersInStore {
		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/stats", adminHandler.Stats)
	}
}
