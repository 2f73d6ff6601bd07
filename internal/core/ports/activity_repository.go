package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// ActivityRepository persists the admin activity feed.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// Recent returns at most limit events, newest first.
	Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}
