package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/api/metrics"
	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// SettingsHandler serves the system settings form.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type saveSettingsRequest struct {
	Values map[string]any `json:"values"`
}

// Get handles GET /v1/admin/settings. Returns the defaults when nothing was
// saved yet or the stored blob cannot be read.
//
// @Summary      Load system settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Settings
// @Router       /v1/admin/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.service.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Save handles PUT /v1/admin/settings. The whole form is replaced.
//
// @Summary      Save system settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveSettingsRequest  true  "Form values"
// @Success      200   {object}  domain.Settings
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/settings [put]
func (h *SettingsHandler) Save(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	// numbers stay json.Number so the stored blob matches the request exactly
	var req saveSettingsRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil || req.Values == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s, err := h.service.Save(c.Request().Context(), req.Values, actor)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.SettingsSavesTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}
	metrics.SettingsSavesTotal.WithLabelValues("saved").Inc()
	return c.JSON(http.StatusOK, s)
}
