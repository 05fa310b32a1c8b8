package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every /api response. Data is present on success,
// Message on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Failure builds the envelope for a rejected request.
func Failure(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}
