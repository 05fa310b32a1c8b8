package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devhub/admin-console/internal/api/metrics"
	"github.com/devhub/admin-console/internal/core/ports"
)

// PostHandler handles HTTP requests for post moderation.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts?status=.
//
// @Summary      List posts, optionally filtered by moderation status
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "pending, approved or rejected"
// @Success      200     {object}  postListEnvelope
// @Failure      401     {object}  Envelope
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return ok(c, posts)
}

// UpdateStatus handles PUT /api/posts/:id/status.
//
// @Summary      Moderate a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Post id"
// @Param        body  body      postStatusRequest  true  "New status"
// @Success      200   {object}  postEnvelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /api/posts/{id}/status [put]
func (h *PostHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req postStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdatePostStatusInput{
		ID:     id,
		Status: req.Status,
		Actor:  actor,
	})
	if err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("post_" + string(updated.Status)).Inc()
	return ok(c, updated)
}
