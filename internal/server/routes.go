package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "200")
	})

	h.Product.RegisterRoutes(e)
	h.AdminProduct.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.AdminOrder.RegisterRoutes(e)
}
