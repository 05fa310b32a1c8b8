package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devhub/admin-console/internal/console/view"
	"github.com/devhub/admin-console/internal/core/domain"
)

// AdminHandler serves the guarded /admin pages. Every GET mounts a page and
// loads it; every POST performs one action on the workspace and re-renders.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Index handles GET /admin.
func (h *AdminHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusFound, dashboardPath)
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	ws.Dashboard.Load(c.Request().Context())
	return render(c, ws, "dashboard", "Dashboard", ws.Dashboard.State())
}

// --- Categories ---

type categoryForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

// Categories handles GET /admin/categories. ?form=new opens the add form.
func (h *AdminHandler) Categories(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	if c.QueryParam("form") == "new" {
		ws.Categories.OpenForm()
	}
	ws.Categories.Load(c.Request().Context())
	return h.renderCategories(c)
}

// CreateCategory handles POST /admin/categories.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	var form categoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	ws.Categories.Create(c.Request().Context(), view.CategoryForm{Name: form.Name, Description: form.Description})
	return h.renderCategories(c)
}

// ToggleCategoryForm handles POST /admin/categories/form.
func (h *AdminHandler) ToggleCategoryForm(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	ws.Categories.ToggleForm()
	return h.renderCategories(c)
}

// CloseCategoryForm handles POST /admin/categories/form/close.
func (h *AdminHandler) CloseCategoryForm(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	ws.Categories.CloseForm()
	return h.renderCategories(c)
}

// DeleteCategory handles POST /admin/categories/:id/delete.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ws.Categories.Delete(c.Request().Context(), id)
	return h.renderCategories(c)
}

func (h *AdminHandler) renderCategories(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	return render(c, ws, "categories", "Categories", ws.Categories.State())
}

// --- Posts ---

type postsPage struct {
	view.PostState
	Tabs []domain.PostStatus
}

type banForm struct {
	UserID   int64  `form:"user_id"`
	Username string `form:"username"`
}

// Posts handles GET /admin/posts?tab=. Without a tab the active one is
// reloaded.
func (h *AdminHandler) Posts(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	tab := domain.PostStatus(c.QueryParam("tab"))
	if tab == "" {
		tab = ws.Posts.Tab()
	}
	ws.Posts.SetTab(c.Request().Context(), tab)
	return h.renderPosts(c)
}

// SelectPost handles POST /admin/posts/:id/select.
func (h *AdminHandler) SelectPost(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ws.Posts.Select(id)
	return h.renderPosts(c)
}

// ApprovePost handles POST /admin/posts/:id/approve.
func (h *AdminHandler) ApprovePost(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ws.Posts.Approve(c.Request().Context(), id)
	return h.renderPosts(c)
}

// RejectPost handles POST /admin/posts/:id/reject.
func (h *AdminHandler) RejectPost(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ws.Posts.Reject(c.Request().Context(), id)
	return h.renderPosts(c)
}

// BanAuthor handles POST /admin/posts/ban.
func (h *AdminHandler) BanAuthor(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	var form banForm
	if err := c.Bind(&form); err != nil || form.UserID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	ws.Posts.BanAuthor(c.Request().Context(), form.UserID, strings.TrimSpace(form.Username))
	return h.renderPosts(c)
}

func (h *AdminHandler) renderPosts(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	return render(c, ws, "posts", "Posts", postsPage{PostState: ws.Posts.State(), Tabs: view.PostTabs})
}

// --- Users ---

// Users handles GET /admin/users. Nothing is fetched until a search runs.
func (h *AdminHandler) Users(c echo.Context) error {
	return h.renderUsers(c)
}

// SearchUsers handles POST /admin/users/search.
func (h *AdminHandler) SearchUsers(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	ws.Users.Search(c.Request().Context(), c.FormValue("term"))
	return h.renderUsers(c)
}

// ClearUsers handles POST /admin/users/clear.
func (h *AdminHandler) ClearUsers(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	ws.Users.Clear()
	return h.renderUsers(c)
}

// ToggleUser handles POST /admin/users/:id/toggle.
func (h *AdminHandler) ToggleUser(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ws.Users.ToggleStatus(c.Request().Context(), id)
	return h.renderUsers(c)
}

func (h *AdminHandler) renderUsers(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	return render(c, ws, "users", "Users", ws.Users.State())
}
