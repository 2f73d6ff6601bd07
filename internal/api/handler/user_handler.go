package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// UserHandler serves the user management table.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Name         *string `json:"name"          validate:"omitempty,min=1,max=120"`
	Role         *string `json:"role"          validate:"omitempty,oneof=user operator prompt_manager super_admin"`
	Status       *string `json:"status"        validate:"omitempty,oneof=active inactive suspended"`
	TokenBalance *int64  `json:"token_balance" validate:"omitempty,min=0"`
}

// List handles GET /v1/admin/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  false  "Role filter"
// @Param        status  query     string  false  "Status filter"
// @Param        search  query     string  false  "Name or email contains"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Param        sort    query     string  false  "name, email, created_at or token_balance"
// @Param        order   query     string  false  "asc or desc"
// @Success      200     {object}  pageResponse[domain.User]
// @Failure      403     {object}  map[string]string
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.UserFilter{
		Role:        domain.Role(c.QueryParam("role")),
		Status:      domain.UserStatus(c.QueryParam("status")),
		Search:      c.QueryParam("search"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page))
}

// Get handles GET /v1/admin/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PATCH /v1/admin/users/:id. Omitted fields stay unchanged.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	upd := ports.UserUpdate{Name: req.Name, TokenBalance: req.TokenBalance}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		upd.Role = &role
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		upd.Status = &status
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), upd, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
