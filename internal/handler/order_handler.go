package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Orders Readyスクリーンが1秒間隔でポーリングする読み取り専用API
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders/api", h.ready)
}

func (h *OrderHandler) ready(c echo.Context) error {
	//ポーリング前提なのでキャッシュさせない
	c.Response().Header().Set("Cache-Control", "no-store")

	out, err := h.uc.ListReady(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
