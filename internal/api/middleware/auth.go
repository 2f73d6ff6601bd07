package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// Context keys set by Auth and OptionalAuth.
const (
	KeySession = "session"
	KeyToken   = "token"
	KeyUserID  = "user_id"
	KeyEmail   = "email"
	KeyRole    = "role"
)

// Authenticator resolves a bearer token to its live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Auth rejects requests without a valid bearer token and injects the
// session into the echo context.
func Auth(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token, ok := bearerToken(authHeader)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			session, err := authn.Authenticate(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			setSession(c, token, session)
			return next(c)
		}
	}
}

// OptionalAuth injects the session when a valid token is present and lets
// every other request through anonymously.
func OptionalAuth(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return next(c)
			}
			if session, err := authn.Authenticate(c.Request().Context(), token); err == nil {
				setSession(c, token, session)
			}
			return next(c)
		}
	}
}

// SessionFrom returns the session injected by Auth or OptionalAuth.
func SessionFrom(c echo.Context) (*domain.Session, bool) {
	s, ok := c.Get(KeySession).(*domain.Session)
	return s, ok && s != nil
}

func setSession(c echo.Context, token string, s *domain.Session) {
	c.Set(KeySession, s)
	c.Set(KeyToken, token)
	c.Set(KeyUserID, s.UserID)
	c.Set(KeyEmail, s.Email)
	c.Set(KeyRole, s.Role)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
