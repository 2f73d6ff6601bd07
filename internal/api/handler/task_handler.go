package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// TaskHandler serves generation tasks and the admin overview.
type TaskHandler struct {
	tasks    ports.TaskService
	overview ports.OverviewService
}

func NewTaskHandler(tasks ports.TaskService, overview ports.OverviewService) *TaskHandler {
	return &TaskHandler{tasks: tasks, overview: overview}
}

type overviewResponse struct {
	UsersByRole     map[domain.Role]int       `json:"users_by_role"`
	Tasks           domain.TaskStats          `json:"tasks"`
	BlogByStatus    map[domain.BlogStatus]int `json:"blog_by_status"`
	KeywordsTracked int                       `json:"keywords_tracked"`
}

// List handles GET /v1/tasks. Users see their own tasks; operators and
// above may pass ?user_id.
//
// @Summary      List generation tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status   query     string  false  "queued, running, completed or failed"
// @Param        type     query     string  false  "Prompt type"
// @Param        user_id  query     string  false  "Owner (operator and above)"
// @Param        page     query     int     false  "Page (1-based)"
// @Param        limit    query     int     false  "Page size (max 100)"
// @Success      200      {object}  pageResponse[domain.GenerationTask]
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	page, err := h.tasks.List(c.Request().Context(), ports.TaskFilter{
		UserID:      c.QueryParam("user_id"),
		Status:      domain.TaskStatus(c.QueryParam("status")),
		Type:        domain.PromptType(c.QueryParam("type")),
		PageRequest: pageRequest(c),
	}, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page))
}

// Stats handles GET /v1/admin/tasks/stats.
//
// @Summary      Task counts and token usage
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.TaskStats
// @Router       /v1/admin/tasks/stats [get]
func (h *TaskHandler) Stats(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	stats, err := h.tasks.Stats(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Overview handles GET /v1/admin/overview.
//
// @Summary      Admin landing page summary
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewResponse
// @Router       /v1/admin/overview [get]
func (h *TaskHandler) Overview(c echo.Context) error {
	o, err := h.overview.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overviewResponse{
		UsersByRole:     o.UsersByRole,
		Tasks:           o.Tasks,
		BlogByStatus:    o.BlogByStatus,
		KeywordsTracked: o.KeywordsTracked,
	})
}
