package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type ProductRequest struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Image      string `json:"image"`
	CategoryID int64  `json:"category_id"`
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/products")

	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

func (h *AdminProductHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 10）
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.AdminListProducts(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) search(c echo.Context) error {
	products, issues, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return writeError(c, err)
	}
	if len(issues) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, IssuesResponse{Errors: issues})
	}

	return c.JSON(http.StatusOK, products)
}

func (h *AdminProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	created, issues, err := h.uc.CreateProduct(c.Request().Context(), validator.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return writeError(c, err)
	}
	if len(issues) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, IssuesResponse{Errors: issues})
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	issues, err := h.uc.UpdateProduct(c.Request().Context(), id, validator.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return writeError(c, err)
	}
	if len(issues) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, IssuesResponse{Errors: issues})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}
