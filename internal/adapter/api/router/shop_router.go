package router

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/handler"
	"luxestore/internal/adapter/api/middleware"
)

// SetupShopRouter registers the storefront routes. They are open to
// anonymous shoppers; a valid token only adds the signed-in user.
func SetupShopRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	shopHandler := handler.GetShopHandler()
	cartHandler := handler.GetCartHandler()

	shop := e.Group("/v1")
	shop.Use(authMiddleware.Optional)

	shop.GET("/products", shopHandler.ListProducts)
	shop.GET("/products/:id", shopHandler.GetProduct)
	shop.GET("/state", shopHandler.GetState)

	shop.GET("/cart", cartHandler.GetCart)
	shop.POST("/cart/items", cartHandler.AddItem)
}
