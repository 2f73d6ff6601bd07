package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/core/domain"
)

type stubAuthenticator struct {
	sessions map[string]*domain.Session
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.Session, error) {
	if sess, ok := s.sessions[token]; ok {
		return sess, nil
	}
	return nil, domain.ErrSessionNotFound
}

func newStubAuthenticator() *stubAuthenticator {
	return &stubAuthenticator{sessions: map[string]*domain.Session{
		"good-token": {ID: "sess_1", UserID: "usr_003", Email: "operator@contentforge.io", Role: domain.RoleOperator},
	}}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(newStubAuthenticator())
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(KeyEmail) != "operator@contentforge.io" {
			t.Fatalf("email not set")
		}
		if c.Get(KeyRole) != domain.RoleOperator {
			t.Fatalf("role not set")
		}
		if c.Get(KeyUserID) != "usr_003" {
			t.Fatalf("user_id not set")
		}
		if s, ok := SessionFrom(c); !ok || s.ID != "sess_1" {
			t.Fatalf("session not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token good-token"},
		{"empty token", "Bearer "},
		{"unknown token", "Bearer revoked-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Auth(newStubAuthenticator())
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestOptionalAuth_PassesAnonymousThrough(t *testing.T) {
	for _, header := range []string{"", "Bearer revoked-token", "garbage"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		handler := OptionalAuth(newStubAuthenticator())(func(c echo.Context) error {
			called = true
			if _, ok := SessionFrom(c); ok {
				t.Fatalf("header %q: expected no session", header)
			}
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !called {
			t.Fatalf("header %q: next not called", header)
		}
	}
}

func TestOptionalAuth_InjectsValidSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuth(newStubAuthenticator())(func(c echo.Context) error {
		if _, ok := SessionFrom(c); !ok {
			t.Fatalf("expected session")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
