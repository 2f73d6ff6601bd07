package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// TaskService lists generation tasks. Actors below operator only ever see
// their own tasks.
type TaskService interface {
	List(ctx context.Context, filter TaskFilter, actor Actor) (Page[*domain.GenerationTask], error)
	Stats(ctx context.Context, actor Actor) (domain.TaskStats, error)
}

// Overview is the admin landing page summary.
type Overview struct {
	UsersByRole     map[domain.Role]int
	Tasks           domain.TaskStats
	BlogByStatus    map[domain.BlogStatus]int
	KeywordsTracked int
}

type OverviewService interface {
	Overview(ctx context.Context) (*Overview, error)
}
