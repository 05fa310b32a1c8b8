package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devhub/admin-console/internal/console/view"
	"github.com/devhub/admin-console/internal/web/middleware"
	"github.com/devhub/admin-console/internal/web/state"
)

// Page is the data every template receives.
type Page struct {
	Title         string
	Active        string
	Authenticated bool
	Notices       []view.Notice
	Data          any
}

// render drains the workspace's notices into the page and renders it.
func render(c echo.Context, ws *state.Workspace, name, title string, data any) error {
	return c.Render(http.StatusOK, name, Page{
		Title:         title,
		Active:        name,
		Authenticated: ws.Session.IsAuthenticated(),
		Notices:       ws.Notices.Drain(),
		Data:          data,
	})
}

func workspace(c echo.Context) (*state.Workspace, error) {
	ws := middleware.WorkspaceFrom(c)
	if ws == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "workspace not loaded")
	}
	return ws, nil
}

// pathID parses the :id path parameter as a positive int64.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
