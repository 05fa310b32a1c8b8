package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"

	"github.com/devhub/admin-console/internal/web/state"
)

const workspaceContextKey = "workspace"

// Sessions loads and saves the scs session around every request.
func Sessions(sm *scs.SessionManager) echo.MiddlewareFunc {
	return echo.WrapMiddleware(sm.LoadAndSave)
}

// LoadWorkspace attaches the browser's workspace to the echo context.
// It must run after Sessions.
func LoadWorkspace(reg *state.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ws, err := reg.Acquire(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "workspace unavailable").SetInternal(err)
			}
			c.Set(workspaceContextKey, ws)
			return next(c)
		}
	}
}

// WorkspaceFrom returns the workspace set by LoadWorkspace, or nil.
func WorkspaceFrom(c echo.Context) *state.Workspace {
	ws, _ := c.Get(workspaceContextKey).(*state.Workspace)
	return ws
}
