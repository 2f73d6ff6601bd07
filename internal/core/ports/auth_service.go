package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token   string
	Session *domain.Session
	User    *domain.User
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	State(ctx context.Context, sessionID string) domain.AuthState
	// Authenticate verifies a bearer token and returns its live session.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}
