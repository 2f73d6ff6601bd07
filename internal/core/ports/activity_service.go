package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// ActivityInput is the DTO handed to the activity pipeline.
type ActivityInput struct {
	Actor  Actor
	Action string
	Target string
}

// ActivityRecorder accepts activity for asynchronous processing.
type ActivityRecorder interface {
	Enqueue(in ActivityInput)
}

// ActivityService persists and serves the activity feed.
type ActivityService interface {
	Process(ctx context.Context, in ActivityInput) error
	Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}
