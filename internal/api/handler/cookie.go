package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const tokenCookieName = "token"

// setTokenCookie attaches the signed session token to the response. Secure is
// set only in production-like environments so local HTTP development keeps
// working; MaxAge mirrors the token expiry.
func setTokenCookie(c echo.Context, token string, maxAge time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearTokenCookie instructs the client to drop the session cookie by
// overwriting it with an already-expired one on the same name and path.
func clearTokenCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
