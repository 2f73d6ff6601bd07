package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/api/metrics"
	"github.com/contentforge/admin-api/internal/core/domain"
)

// RequireRole enforces the role hierarchy: the caller passes when their role
// ranks at or above the lowest role in required. Must run after Auth.
func RequireRole(required ...domain.Role) echo.MiddlewareFunc {
	label := lowestRole(required)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(KeyRole).(domain.Role)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !domain.HasPermission(role, required...) {
				metrics.PermissionDeniedTotal.WithLabelValues(label).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

func lowestRole(roles []domain.Role) string {
	var lowest domain.Role
	for _, r := range roles {
		if !r.Valid() {
			continue
		}
		if lowest == "" || r.Level() < lowest.Level() {
			lowest = r
		}
	}
	if lowest == "" {
		return "none"
	}
	return string(lowest)
}
