package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxSessionIDKey   = "cart_session" // string
	sessionCookieName = "cart_session"
	sessionCookieTTL  = 24 * time.Hour
)

// CartSession はカートのセッションIDをcookieで払い出す。
// 決済リダイレクトから戻ってきた時も同じcookieでドラフトに辿り着ける。
func CartSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				c.Set(CtxSessionIDKey, cookie.Value)
				return next(c)
			}

			sid := uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     sessionCookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(sessionCookieTTL),
			})
			c.Set(CtxSessionIDKey, sid)
			return next(c)
		}
	}
}

// GetSessionID はcontextからセッションIDを取り出す。
func GetSessionID(c echo.Context) (string, bool) {
	v := c.Get(CtxSessionIDKey)
	sid, ok := v.(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
