package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Role         *domain.Role
	Status       *domain.UserStatus
	TokenBalance *int64
}

type UserService interface {
	List(ctx context.Context, filter UserFilter) (Page[*domain.User], error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate, actor Actor) (*domain.User, error)
}
