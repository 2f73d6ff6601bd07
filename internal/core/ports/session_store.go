package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// SessionStore keeps issued sessions until they expire or are deleted.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete is idempotent.
	Delete(ctx context.Context, id string) error
}
