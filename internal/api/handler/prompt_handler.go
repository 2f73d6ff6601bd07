package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/api/metrics"
	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// PromptHandler serves the prompt editor.
type PromptHandler struct {
	service ports.PromptService
}

func NewPromptHandler(service ports.PromptService) *PromptHandler {
	return &PromptHandler{service: service}
}

type promptRequest struct {
	Title        string  `json:"title"         validate:"required,max=200"`
	SystemPrompt string  `json:"system_prompt" validate:"required"`
	UserTemplate string  `json:"user_template"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"   validate:"min=0,max=2"`
	MaxTokens    int     `json:"max_tokens"    validate:"required,gt=0"`
	Notes        string  `json:"notes"`
}

func (r promptRequest) toInput() ports.PromptInput {
	return ports.PromptInput{
		Title:        r.Title,
		SystemPrompt: r.SystemPrompt,
		UserTemplate: r.UserTemplate,
		Model:        r.Model,
		Temperature:  r.Temperature,
		MaxTokens:    r.MaxTokens,
		Notes:        r.Notes,
	}
}

// ListTypes handles GET /v1/admin/prompts.
//
// @Summary      Prompt types with version summary
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.PromptTypeSummary
// @Router       /v1/admin/prompts [get]
func (h *PromptHandler) ListTypes(c echo.Context) error {
	types, err := h.service.ListTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// ListVersions handles GET /v1/admin/prompts/:type/versions.
//
// @Summary      Versions of a prompt type, newest first
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Param        type  path      string  true  "Prompt type"
// @Success      200   {array}   domain.PromptVersion
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/prompts/{type}/versions [get]
func (h *PromptHandler) ListVersions(c echo.Context) error {
	versions, err := h.service.ListVersions(c.Request().Context(), domain.PromptType(c.Param("type")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, versions)
}

// GetVersion handles GET /v1/admin/prompts/versions/:id.
//
// @Summary      Get a prompt version
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Version ID"
// @Success      200  {object}  domain.PromptVersion
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/prompts/versions/{id} [get]
func (h *PromptHandler) GetVersion(c echo.Context) error {
	v, err := h.service.GetVersion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// CreateVersion handles POST /v1/admin/prompts/:type/versions.
//
// @Summary      Save a new draft version
// @Tags         prompts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        type  path      string         true  "Prompt type"
// @Param        body  body      promptRequest  true  "Prompt configuration"
// @Success      201   {object}  domain.PromptVersion
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/prompts/{type}/versions [post]
func (h *PromptHandler) CreateVersion(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req promptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	v, err := h.service.CreateVersion(c.Request().Context(), domain.PromptType(c.Param("type")), req.toInput(), actor)
	if err != nil {
		return err
	}
	metrics.PromptVersionsTotal.WithLabelValues(string(v.PromptType), "created").Inc()
	return c.JSON(http.StatusCreated, v)
}

// UpdateDraft handles PUT /v1/admin/prompts/versions/:id.
//
// @Summary      Edit a draft version in place
// @Tags         prompts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Version ID"
// @Param        body  body      promptRequest  true  "Prompt configuration"
// @Success      200   {object}  domain.PromptVersion
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/prompts/versions/{id} [put]
func (h *PromptHandler) UpdateDraft(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req promptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	v, err := h.service.UpdateDraft(c.Request().Context(), c.Param("id"), req.toInput(), actor)
	if err != nil {
		return err
	}
	metrics.PromptVersionsTotal.WithLabelValues(string(v.PromptType), "updated").Inc()
	return c.JSON(http.StatusOK, v)
}

// Activate handles POST /v1/admin/prompts/versions/:id/activate.
//
// @Summary      Make a version the active one of its type
// @Tags         prompts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Version ID"
// @Success      200  {object}  domain.PromptVersion
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/prompts/versions/{id}/activate [post]
func (h *PromptHandler) Activate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	v, err := h.service.Activate(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	metrics.PromptVersionsTotal.WithLabelValues(string(v.PromptType), "activated").Inc()
	return c.JSON(http.StatusOK, v)
}
