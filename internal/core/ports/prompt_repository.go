package ports

import (
	"context"
	"time"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// PromptRepository persists prompt versions.
type PromptRepository interface {
	// Create assigns the next version number for the prompt type and stores v.
	Create(ctx context.Context, v *domain.PromptVersion) error
	Update(ctx context.Context, v *domain.PromptVersion) error
	FindByID(ctx context.Context, id string) (*domain.PromptVersion, error)
	// ListByType returns every version of t, newest first.
	ListByType(ctx context.Context, t domain.PromptType) ([]*domain.PromptVersion, error)
	// Activate marks id active and archives the previously active version
	// of the same type.
	Activate(ctx context.Context, id string, at time.Time) (*domain.PromptVersion, error)
}
