package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const LoginPath = "/login"

// Guard returns child when isAuthenticated holds, otherwise a handler that
// redirects to the login page.
func Guard(isAuthenticated bool, child echo.HandlerFunc) echo.HandlerFunc {
	if isAuthenticated {
		return child
	}
	return func(c echo.Context) error {
		return c.Redirect(http.StatusFound, LoginPath)
	}
}

// RequireSession guards every route of a group. The decision is taken again
// on each request from the workspace's session store.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ws := WorkspaceFrom(c)
			return Guard(ws != nil && ws.Session.IsAuthenticated(), next)(c)
		}
	}
}
