package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/view"
	"github.com/devhub/admin-console/internal/web/metrics"
	"github.com/devhub/admin-console/internal/web/middleware"
)

const dashboardPath = "/admin/dashboard"

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// AuthHandler signs operators in and out of their workspace.
type AuthHandler struct {
	sessions *scs.SessionManager
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(sessions *scs.SessionManager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, validate: validator.New(), log: log}
}

// Root handles GET /.
func (h *AuthHandler) Root(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	if ws.Session.IsAuthenticated() {
		return c.Redirect(http.StatusFound, dashboardPath)
	}
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	if ws.Session.IsAuthenticated() {
		return c.Redirect(http.StatusFound, dashboardPath)
	}
	return render(c, ws, "login", "Sign in", nil)
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}

	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.Username = strings.TrimSpace(form.Username)

	if err := h.validate.Struct(form); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		ws.Notices.Notify(view.Failure(loginProblem(err)))
		return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
	}

	ctx := c.Request().Context()
	res := ws.Client.Auth.Login(ctx, form.Username, form.Password)
	if !res.OK() {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		ws.Notices.Notify(view.Failure(view.FailureMessage(res.Err, "login failed")))
		return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
	}

	if err := h.sessions.RenewToken(ctx); err != nil {
		h.log.Warn().Err(err).Msg("failed to renew session token")
	}
	if err := ws.Session.SetCredential(ctx, res.Value.Token); err != nil {
		h.log.Error().Err(err).Str("workspace", ws.ID).Msg("failed to persist credential")
	}
	ws.ResetViews()

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	h.log.Info().Str("workspace", ws.ID).Str("username", form.Username).Msg("operator signed in")
	ws.Notices.Notify(view.Success("signed in successfully"))
	return c.Redirect(http.StatusSeeOther, dashboardPath)
}

// Logout handles POST /logout. The token is only forgotten locally.
func (h *AuthHandler) Logout(c echo.Context) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}

	if err := ws.Session.Logout(c.Request().Context()); err != nil {
		h.log.Error().Err(err).Str("workspace", ws.ID).Msg("failed to clear credential")
	}
	ws.ResetViews()

	h.log.Info().Str("workspace", ws.ID).Msg("operator signed out")
	ws.Notices.Notify(view.Success("signed out successfully"))
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func loginProblem(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return strings.ToLower(ve[0].Field()) + " is required"
	}
	return "invalid sign-in form"
}
