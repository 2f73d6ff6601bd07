package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/api/metrics"
	"github.com/contentforge/admin-api/internal/api/middleware"
	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	State     domain.AuthState `json:"state"`
}

// Login authenticates against the mock user table and returns a JWT token.
// The response is delayed to mimic a remote identity provider.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.Session.ExpiresAt,
		State:     domain.Authenticated(result.User),
	})
}

// Logout revokes the caller's session, if any. The response is always the
// anonymous state.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AuthState
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if session, ok := middleware.SessionFrom(c); ok {
		if err := h.authService.Logout(c.Request().Context(), session.ID); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, domain.Anonymous())
}

// Session reports the current auth state. Missing, invalid or revoked
// tokens all resolve to the anonymous state.
//
// @Summary      Current auth state
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AuthState
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusOK, domain.Anonymous())
	}
	return c.JSON(http.StatusOK, h.authService.State(c.Request().Context(), session.ID))
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return "inactive"
	default:
		return "error"
	}
}
