package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// UserFilter carries the query of the user management table.
type UserFilter struct {
	Role   domain.Role       // optional
	Status domain.UserStatus // optional
	Search string            // optional: case-insensitive match on name or email
	PageRequest
}

// UserRepository defines persistence for the user table.
// Users are never deleted.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	CountByRole(ctx context.Context) (map[domain.Role]int, error)
}
