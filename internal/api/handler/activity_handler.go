package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/core/ports"
)

type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Recent handles GET /v1/admin/activity.
//
// @Summary      Latest admin actions, newest first
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50, max 200)"
// @Success      200    {array}   domain.ActivityEvent
// @Router       /v1/admin/activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	events, err := h.service.Recent(c.Request().Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
