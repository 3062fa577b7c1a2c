package handler

import (
	"fmt"
	"net/http"

	"app/internal/refresh"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc  *usecase.OrderUsecase
	hub *refresh.Hub
}

func NewAdminOrderHandler(uc *usecase.OrderUsecase, hub *refresh.Hub) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, hub: hub}
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")

	admin.GET("/orders/api", h.pending)
	admin.POST("/orders/:id/complete", h.complete)
	admin.GET("/refresh", h.refreshStream)
}

// 未完了注文の一覧（管理画面が1秒間隔でポーリング）
func (h *AdminOrderHandler) pending(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-store")

	out, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 注文を完了にする（status=true、order_ready_at打刻）
func (h *AdminOrderHandler) complete(c echo.Context) error {
	issues, err := h.uc.CompleteOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if len(issues) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, IssuesResponse{Errors: issues})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "completed"})
}

// refreshStream はミューテーション後の再取得合図をSSEで流す。
// ポーリングの補助で、繋がっていなくても動作には影響しない。
func (h *AdminOrderHandler) refreshStream(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-store")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Flush()

	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	ctx := c.Request().Context()
	for {
		select {
		case view, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", view); err != nil {
				return nil
			}
			c.Response().Flush()
		case <-ctx.Done():
			return nil
		}
	}
}
