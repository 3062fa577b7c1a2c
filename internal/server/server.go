package server

import (
	"context"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Order        *handler.OrderHandler
	AdminOrder   *handler.AdminOrderHandler
}

// New は全ルートを登録したechoを組み立てる。
func New(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	RegisterRoutes(e, h)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

func Shutdown(ctx context.Context, e *echo.Echo) error {
	return e.Shutdown(ctx)
}
