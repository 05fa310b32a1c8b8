package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/web/state"
)

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "secret") }

func TestGuard_Authenticated(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/posts", nil), rec)

	if err := Guard(true, okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "secret" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}

func TestGuard_RedirectsToLogin(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/posts", nil), rec)

	if err := Guard(false, okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != LoginPath {
		t.Fatalf("unexpected location %q", loc)
	}
}

func newGuardedEcho(t *testing.T, idle time.Duration) (*echo.Echo, *state.Registry) {
	t.Helper()
	sm := scs.New()
	reg := state.NewRegistry(sm, client.Config{BaseURL: "http://127.0.0.1:0", Logger: zerolog.Nop()}, idle, zerolog.Nop())

	e := echo.New()
	e.Use(Sessions(sm), LoadWorkspace(reg))
	e.POST("/login", func(c echo.Context) error {
		ws := WorkspaceFrom(c)
		if err := ws.Session.SetCredential(c.Request().Context(), "tok"); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.POST("/logout", func(c echo.Context) error {
		if err := WorkspaceFrom(c).Session.Logout(c.Request().Context()); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	admin := e.Group("/admin", RequireSession())
	admin.GET("/dashboard", okHandler)
	return e, reg
}

func do(e *echo.Echo, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireSession_FollowsLoginAndLogout(t *testing.T) {
	e, _ := newGuardedEcho(t, time.Hour)

	rec := do(e, http.MethodGet, "/admin/dashboard", nil)
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != LoginPath {
		t.Fatalf("anonymous access must redirect, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	if rec := do(e, http.MethodPost, "/login", cookies); rec.Code != http.StatusNoContent {
		t.Fatalf("login returned %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/admin/dashboard", cookies); rec.Code != http.StatusOK {
		t.Fatalf("signed-in access returned %d", rec.Code)
	}

	if rec := do(e, http.MethodPost, "/logout", cookies); rec.Code != http.StatusNoContent {
		t.Fatalf("logout returned %d", rec.Code)
	}
	rec = do(e, http.MethodGet, "/admin/dashboard", cookies)
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != LoginPath {
		t.Fatalf("access after logout must redirect, got %d", rec.Code)
	}
}

func TestRequireSession_CredentialOutlivesWorkspace(t *testing.T) {
	e, reg := newGuardedEcho(t, time.Nanosecond)

	rec := do(e, http.MethodPost, "/login", nil)
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	time.Sleep(time.Millisecond)
	if n := reg.Sweep(); n != 1 {
		t.Fatalf("expected one eviction, got %d", n)
	}

	if rec := do(e, http.MethodGet, "/admin/dashboard", cookies); rec.Code != http.StatusOK {
		t.Fatalf("credential should be restored from the session, got %d", rec.Code)
	}
}
