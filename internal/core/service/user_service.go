package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

type UserService struct {
	repo     ports.UserRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, activity ports.ActivityRecorder, log zerolog.Logger) *UserService {
	if activity == nil {
		activity = noopRecorder{}
	}
	return &UserService{repo: repo, activity: activity, log: log}
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) (ports.Page[*domain.User], error) {
	filter.Normalize()
	if filter.Role != "" && !filter.Role.Valid() {
		return ports.Page[*domain.User]{}, fmt.Errorf("%w: %q", domain.ErrInvalidRole, filter.Role)
	}
	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return ports.Page[*domain.User]{}, fmt.Errorf("list users: %w", err)
	}
	return ports.NewPage(users, total, filter.PageRequest), nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. Users are never deleted; deactivation
// goes through Status.
func (s *UserService) Update(ctx context.Context, id string, upd ports.UserUpdate, actor ports.Actor) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		user.Name = name
	}
	if upd.Role != nil {
		if !upd.Role.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, *upd.Role)
		}
		user.Role = *upd.Role
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *upd.Status)
		}
		user.Status = *upd.Status
	}
	if upd.TokenBalance != nil {
		if *upd.TokenBalance < 0 {
			return nil, fmt.Errorf("%w: token balance cannot be negative", domain.ErrValidation)
		}
		user.TokenBalance = *upd.TokenBalance
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionUserUpdated, Target: user.ID})
	s.log.Info().Str("user_id", user.ID).Str("actor", actor.Email).Msg("user updated")
	return user, nil
}
