package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/api/handler"
	"github.com/devhub/admin-console/internal/core/domain"
)

// businessErrors are rule violations reported as HTTP 200 with success=false.
var businessErrors = []error{
	domain.ErrInvalidCredentials,
	domain.ErrCategoryNotFound,
	domain.ErrDuplicateCategory,
	domain.ErrInvalidCategory,
	domain.ErrPostNotFound,
	domain.ErrInvalidStatus,
	domain.ErrInvalidTransition,
	domain.ErrAccountNotFound,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Reports domain rule violations and validation failures as HTTP 200 with success=false.
//   - Keeps Echo's own status codes (401 from the auth middleware, 400 bind failures, 404 routes).
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the {"success", "message"} envelope in every case.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, handler.Failure(msg))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusOK, ve.Error()
	}

	for _, known := range businessErrors {
		if errors.Is(err, known) {
			return http.StatusOK, err.Error()
		}
	}

	// Echo's own errors (auth failures, bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
