package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/api/middleware"
	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// NavigationHandler serves the layout decision and the caller's profile.
type NavigationHandler struct {
	auth  ports.AuthService
	nav   ports.NavigationService
	users ports.UserService
}

func NewNavigationHandler(auth ports.AuthService, nav ports.NavigationService, users ports.UserService) *NavigationHandler {
	return &NavigationHandler{auth: auth, nav: nav, users: users}
}

// Navigation resolves the shell and menu for the caller.
//
// @Summary      Resolve shell and menu
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Navigation
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Navigation(c echo.Context) error {
	state := domain.Anonymous()
	if session, ok := middleware.SessionFrom(c); ok {
		state = h.auth.State(c.Request().Context(), session.ID)
	}
	return c.JSON(http.StatusOK, h.nav.Resolve(state))
}

// Me returns the caller's own user record.
//
// @Summary      Current user
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/me [get]
func (h *NavigationHandler) Me(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
