package memory

import (
	"cmp"
	"context"
	"sync"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

var userOrder = map[string]func(a, b *domain.User) int{
	"name":          func(a, b *domain.User) int { return compareFold(a.Name, b.Name) },
	"email":         func(a, b *domain.User) int { return cmp.Compare(a.Email, b.Email) },
	"created_at":    func(a, b *domain.User) int { return a.CreatedAt.Compare(b.CreatedAt) },
	"token_balance": func(a, b *domain.User) int { return cmp.Compare(a.TokenBalance, b.TokenBalance) },
}

// UserRepository is the mock user table keyed by email.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	emailOf map[string]string // id -> email
}

// NewUserRepository seeds the table with users.
func NewUserRepository(users []*domain.User) *UserRepository {
	r := &UserRepository{
		byEmail: make(map[string]*domain.User, len(users)),
		emailOf: make(map[string]string, len(users)),
	}
	for _, u := range users {
		r.byEmail[u.Email] = u.Clone()
		r.emailOf[u.ID] = u.Email
	}
	return r
}

// FindByEmail is an exact, case-sensitive lookup.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email, ok := r.emailOf[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.byEmail[email].Clone(), nil
}

func (r *UserRepository) List(_ context.Context, filter ports.UserFilter) ([]*domain.User, int64, error) {
	r.mu.RLock()
	matched := make([]*domain.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !containsFold(u.Name, filter.Search) && !containsFold(u.Email, filter.Search) {
			continue
		}
		matched = append(matched, u.Clone())
	}
	r.mu.RUnlock()

	// map iteration is random; settle ties on email first
	sortBy(matched, "email", false, "email", userOrder)
	sortBy(matched, filter.SortBy, filter.SortDesc, "created_at", userOrder)
	return paginate(matched, filter.PageRequest), int64(len(matched)), nil
}

// Update replaces the stored record. The email (the table key) cannot change.
func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email, ok := r.emailOf[user.ID]
	if !ok || email != user.Email {
		return domain.ErrUserNotFound
	}
	r.byEmail[email] = user.Clone()
	return nil
}

func (r *UserRepository) CountByRole(_ context.Context) (map[domain.Role]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[domain.Role]int, 4)
	for _, u := range r.byEmail {
		out[u.Role]++
	}
	return out, nil
}
