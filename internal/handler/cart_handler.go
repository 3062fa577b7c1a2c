package handler

import (
	"net/http"
	"strconv"

	"app/internal/cart"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart のHTTP。カート自体はセッション内のStoreで、DBには触れない。
type CartHandler struct {
	carts     *cart.Manager
	productUC *usecase.ProductUsecase
}

// DI
func NewCartHandler(carts *cart.Manager, productUC *usecase.ProductUsecase) *CartHandler {
	return &CartHandler{carts: carts, productUC: productUC}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
}

type CartResponse struct {
	Items []cart.OrderItem `json:"items"`
	Total int64            `json:"total"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")
	g.Use(middleware.CartSession())

	g.GET("", h.show)
	g.POST("/items", h.add)
	g.POST("/items/:id/increase", h.increase)
	g.POST("/items/:id/decrease", h.decrease)
	g.DELETE("/items/:id", h.remove)
	g.DELETE("", h.clear)
}

func (h *CartHandler) show(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartResponse{Items: store.Items(), Total: store.Total()})
}

// 商品を1つ追加（既にあれば数量+1）
func (h *CartHandler) add(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return writeError(c, err)
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//商品は追加時点のスナップショットとして明細に入る
	p, err := h.productUC.GetProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	store.AddToOrder(p)
	return c.JSON(http.StatusOK, CartResponse{Items: store.Items(), Total: store.Total()})
}

func (h *CartHandler) increase(c echo.Context) error {
	store, id, err := h.storeAndID(c)
	if err != nil {
		return writeError(c, err)
	}

	store.IncreaseQuantity(id)
	return c.JSON(http.StatusOK, CartResponse{Items: store.Items(), Total: store.Total()})
}

func (h *CartHandler) decrease(c echo.Context) error {
	store, id, err := h.storeAndID(c)
	if err != nil {
		return writeError(c, err)
	}

	store.DecreaseQuantity(id)
	return c.JSON(http.StatusOK, CartResponse{Items: store.Items(), Total: store.Total()})
}

func (h *CartHandler) remove(c echo.Context) error {
	store, id, err := h.storeAndID(c)
	if err != nil {
		return writeError(c, err)
	}

	store.RemoveItem(id)
	return c.JSON(http.StatusOK, CartResponse{Items: store.Items(), Total: store.Total()})
}

func (h *CartHandler) clear(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return writeError(c, err)
	}

	store.ClearOrder()
	return c.JSON(http.StatusOK, CartResponse{Items: store.Items(), Total: store.Total()})
}

func (h *CartHandler) store(c echo.Context) (*cart.Store, error) {
	sid, ok := middleware.GetSessionID(c)
	if !ok {
		return nil, usecase.NewHTTPError(http.StatusInternalServerError, "no session")
	}
	return h.carts.Get(sid), nil
}

func (h *CartHandler) storeAndID(c echo.Context) (*cart.Store, int64, error) {
	store, err := h.store(c)
	if err != nil {
		return nil, 0, err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return store, id, nil
}
