package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/contentforge/admin-api/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errorStatus maps a domain sentinel to its response. An empty message
// means the wrapped error text is safe to show.
type errorStatus struct {
	target error
	code   int
	msg    string
}

// Order matters: ErrUserNotFound is checked before the generic ErrNotFound.
var errorStatuses = []errorStatus{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrSessionNotFound, http.StatusUnauthorized, "session expired or revoked"},
	{domain.ErrUserInactive, http.StatusForbidden, "user account is not active"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{domain.ErrNotFound, http.StatusNotFound, "resource not found"},
	{domain.ErrVersionNotEditable, http.StatusConflict, "only draft versions can be edited"},
	{domain.ErrConflict, http.StatusConflict, ""},
	{domain.ErrInvalidRole, http.StatusUnprocessableEntity, ""},
	{domain.ErrValidation, http.StatusUnprocessableEntity, ""},
}

// NewHTTPErrorHandler renders every error as {"error": "..."}. Unknown
// errors are logged and answered with a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			if s.msg == "" {
				return s.code, err.Error()
			}
			return s.code, s.msg
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
