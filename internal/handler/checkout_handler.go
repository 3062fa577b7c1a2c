package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// success/canceled後にホームへ戻すまでの表示時間（ms）
const redirectDelayMS = 2000

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	Name string `json:"name"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type CheckoutReturnResponse struct {
	usecase.SubmissionResult
	Redirect        string `json:"redirect"`
	RedirectDelayMS int    `json:"redirect_delay_ms"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/checkout")
	g.Use(middleware.CartSession())

	g.POST("", h.begin)
	g.GET("/success", h.success)
	g.GET("/canceled", h.canceled)
}

// ドラフト保存→決済セッション作成→リダイレクト先URLを返す
func (h *CheckoutHandler) begin(c echo.Context) error {
	sid, ok := middleware.GetSessionID(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	url, err := h.uc.BeginCheckout(c.Request().Context(), sid, req.Name)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CheckoutResponse{URL: url})
}

// 決済プロバイダから成功で戻ってきた
func (h *CheckoutHandler) success(c echo.Context) error {
	sid, ok := middleware.GetSessionID(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	result, err := h.uc.HandleSuccess(c.Request().Context(), sid)
	if err != nil {
		return writeError(c, err)
	}
	if len(result.Issues) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, IssuesResponse{Errors: result.Issues})
	}

	return c.JSON(http.StatusOK, CheckoutReturnResponse{
		SubmissionResult: result,
		Redirect:         "/",
		RedirectDelayMS:  redirectDelayMS,
	})
}

// キャンセルで戻ってきた。ローカル状態を捨てるだけ
func (h *CheckoutHandler) canceled(c echo.Context) error {
	sid, ok := middleware.GetSessionID(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	if err := h.uc.HandleCancel(c.Request().Context(), sid); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CheckoutReturnResponse{
		Redirect:        "/",
		RedirectDelayMS: redirectDelayMS,
	})
}
