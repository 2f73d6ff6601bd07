package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{
		repo: repo,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Process stamps and persists a single activity entry.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	if in.Action == "" {
		return fmt.Errorf("process activity: %w: action is required", domain.ErrValidation)
	}
	at := s.now()
	event := &domain.ActivityEvent{
		ID:     ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()).String(),
		Actor:  in.Actor.Email,
		Role:   in.Actor.Role,
		Action: in.Action,
		Target: in.Target,
		At:     at,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Str("actor", event.Actor).
		Str("action", event.Action).
		Str("target", event.Target).
		Msg("activity recorded")
	return nil
}

// Recent returns the newest entries; limit is clamped to (0, 200].
func (s *activityService) Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return s.repo.Recent(ctx, limit)
}
