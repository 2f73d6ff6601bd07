package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/api/middleware"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// ctxActor extracts the session injected by the Auth middleware. A missing
// session means the route was mounted without Auth; reject with 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.ActorFromSession(session), nil
}

// pageRequest reads ?page, ?limit, ?sort and ?order. Malformed numbers fall
// back to the defaults; the service applies the caps.
func pageRequest(c echo.Context) ports.PageRequest {
	req := ports.PageRequest{
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
		SortBy:   c.QueryParam("sort"),
		SortDesc: strings.EqualFold(c.QueryParam("order"), "desc"),
	}
	req.Normalize()
	return req
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}

// bindAndValidate binds the body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

// pageResponse is the JSON envelope of every list endpoint.
type pageResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func toPageResponse[T any](p ports.Page[T]) pageResponse[T] {
	return pageResponse[T]{
		Items:      p.Items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}
