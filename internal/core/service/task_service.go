package service

import (
	"context"
	"fmt"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

type TaskService struct {
	repo ports.TaskRepository
}

func NewTaskService(repo ports.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List scopes the query to the actor's own tasks unless the actor is at
// least an operator.
func (s *TaskService) List(ctx context.Context, filter ports.TaskFilter, actor ports.Actor) (ports.Page[*domain.GenerationTask], error) {
	if !actor.Role.Valid() {
		return ports.Page[*domain.GenerationTask]{}, domain.ErrForbidden
	}
	if !domain.HasPermission(actor.Role, domain.RoleOperator) {
		filter.UserID = actor.UserID
	}
	filter.Normalize()

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return ports.Page[*domain.GenerationTask]{}, fmt.Errorf("list tasks: %w", err)
	}
	return ports.NewPage(items, total, filter.PageRequest), nil
}

func (s *TaskService) Stats(ctx context.Context, actor ports.Actor) (domain.TaskStats, error) {
	if !actor.Role.Valid() {
		return domain.TaskStats{}, domain.ErrForbidden
	}
	userID := ""
	if !domain.HasPermission(actor.Role, domain.RoleOperator) {
		userID = actor.UserID
	}
	return s.repo.Stats(ctx, userID)
}

type OverviewService struct {
	users    ports.UserRepository
	tasks    ports.TaskRepository
	blog     ports.BlogRepository
	keywords ports.KeywordRepository
}

func NewOverviewService(users ports.UserRepository, tasks ports.TaskRepository, blog ports.BlogRepository, keywords ports.KeywordRepository) *OverviewService {
	return &OverviewService{users: users, tasks: tasks, blog: blog, keywords: keywords}
}

func (s *OverviewService) Overview(ctx context.Context) (*ports.Overview, error) {
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: users: %w", err)
	}
	for _, r := range domain.Roles() {
		if _, ok := byRole[r]; !ok {
			byRole[r] = 0
		}
	}

	stats, err := s.tasks.Stats(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("overview: tasks: %w", err)
	}

	blog, err := s.blog.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: blog: %w", err)
	}

	keywords, err := s.keywords.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: keywords: %w", err)
	}

	return &ports.Overview{
		UsersByRole:     byRole,
		Tasks:           stats,
		BlogByStatus:    blog,
		KeywordsTracked: keywords,
	}, nil
}
