package router

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/handler"
)

func SetupSettingsRouter(e *echo.Echo) {
	settingsHandler := handler.GetSettingsHandler()

	e.GET("/v1/settings", settingsHandler.GetPublic)
	e.GET("/v1/payment-providers", settingsHandler.PaymentProviders)
}
