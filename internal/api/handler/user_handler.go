package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devhub/admin-console/internal/api/metrics"
	"github.com/devhub/admin-console/internal/core/ports"
)

// UserHandler handles HTTP requests for community account management.
type UserHandler struct {
	service ports.AccountService
}

func NewUserHandler(service ports.AccountService) *UserHandler {
	return &UserHandler{service: service}
}

// Search handles GET /api/users?search=.
//
// @Summary      Search users by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Case-insensitive username fragment; empty returns all users"
// @Success      200     {object}  accountListEnvelope
// @Failure      401     {object}  Envelope
// @Router       /api/users [get]
func (h *UserHandler) Search(c echo.Context) error {
	accounts, err := h.service.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return ok(c, accounts)
}

// UpdateStatus handles PUT /api/users/:id/status.
//
// @Summary      Ban or reinstate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "User id"
// @Param        body  body      accountStatusRequest  true  "New status"
// @Success      200   {object}  accountEnvelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /api/users/{id}/status [put]
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req accountStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateAccountStatusInput{
		ID:     id,
		Status: req.Status,
		Actor:  actor,
	})
	if err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("user_" + string(updated.Status)).Inc()
	return ok(c, updated)
}
