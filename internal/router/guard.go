package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/navyashreebh2-create/diary-baby/internal/auth"
)

var protectedPagePrefixes = []string{"/diary", "/settings"}

var authPages = map[string]bool{
	"/login":  true,
	"/signup": true,
}

// PageGuard redirects page requests based on session state: protected pages
// without a valid token go to /login, auth pages with a valid token go to
// /diary. API routes are never redirected; they authenticate themselves and
// answer with structured errors. The guard only inspects the token
// structurally and by expiry; it never touches the data layer, and a failed
// verification means "no valid token", not a failed request.
func PageGuard(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/api/") {
				return next(c)
			}

			hasValidToken := false
			if cookie, err := c.Cookie(auth.SessionCookieName); err == nil {
				if _, err := tokens.Verify(cookie.Value); err == nil {
					hasValidToken = true
				}
			}

			if !hasValidToken && isProtectedPage(path) {
				return c.Redirect(http.StatusFound, "/login")
			}
			if hasValidToken && authPages[path] {
				return c.Redirect(http.StatusFound, "/diary")
			}
			return next(c)
		}
	}
}

func isProtectedPage(path string) bool {
	for _, prefix := range protectedPagePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
