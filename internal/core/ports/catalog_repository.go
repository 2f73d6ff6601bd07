package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

type ProductFilter struct {
	Search   string // name or sku
	Status   domain.ProductStatus
	Category string
	PageRequest
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
}

type KeywordFilter struct {
	Search string
	Status domain.KeywordStatus
	PageRequest
}

type KeywordRepository interface {
	List(ctx context.Context, filter KeywordFilter) ([]*domain.Keyword, int64, error)
	// Create returns domain.ErrConflict when the term is already tracked.
	Create(ctx context.Context, k *domain.Keyword) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type BlogFilter struct {
	Search string // title or keyword
	Status domain.BlogStatus
	PageRequest
}

type BlogRepository interface {
	List(ctx context.Context, filter BlogFilter) ([]*domain.BlogPost, int64, error)
	CountByStatus(ctx context.Context) (map[domain.BlogStatus]int, error)
}

type TaskFilter struct {
	UserID string // empty = every user
	Status domain.TaskStatus
	Type   domain.PromptType
	PageRequest
}

type TaskRepository interface {
	List(ctx context.Context, filter TaskFilter) ([]*domain.GenerationTask, int64, error)
	Stats(ctx context.Context, userID string) (domain.TaskStats, error)
}
