package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// PromptRepository stores prompt versions grouped by type.
type PromptRepository struct {
	mu       sync.RWMutex
	versions map[string]*domain.PromptVersion
}

func NewPromptRepository(seed []*domain.PromptVersion) *PromptRepository {
	r := &PromptRepository{versions: make(map[string]*domain.PromptVersion, len(seed))}
	for _, v := range seed {
		c := *v
		r.versions[v.ID] = &c
	}
	return r
}

// Create assigns v.Version under the write lock so numbers never collide.
func (r *PromptRepository) Create(_ context.Context, v *domain.PromptVersion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.versions[v.ID]; exists {
		return domain.ErrConflict
	}
	latest := 0
	for _, existing := range r.versions {
		if existing.PromptType == v.PromptType && existing.Version > latest {
			latest = existing.Version
		}
	}
	v.Version = latest + 1
	c := *v
	r.versions[v.ID] = &c
	return nil
}

func (r *PromptRepository) Update(_ context.Context, v *domain.PromptVersion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.versions[v.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *v
	r.versions[v.ID] = &c
	return nil
}

func (r *PromptRepository) FindByID(_ context.Context, id string) (*domain.PromptVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.versions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *v
	return &c, nil
}

func (r *PromptRepository) ListByType(_ context.Context, t domain.PromptType) ([]*domain.PromptVersion, error) {
	r.mu.RLock()
	out := make([]*domain.PromptVersion, 0)
	for _, v := range r.versions {
		if v.PromptType == t {
			c := *v
			out = append(out, &c)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *domain.PromptVersion) int { return b.Version - a.Version })
	return out, nil
}

// Activate swaps the active version of a type in one critical section.
func (r *PromptRepository) Activate(_ context.Context, id string, at time.Time) (*domain.PromptVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.versions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for _, v := range r.versions {
		if v.ID != id && v.PromptType == target.PromptType && v.Status == domain.VersionActive {
			v.Status = domain.VersionArchived
			v.UpdatedAt = at
		}
	}
	if target.Status != domain.VersionActive {
		target.Status = domain.VersionActive
		target.UpdatedAt = at
	}
	c := *target
	return &c, nil
}
