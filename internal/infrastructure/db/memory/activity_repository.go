package memory

import (
	"context"
	"sync"

	"github.com/contentforge/admin-api/internal/core/domain"
)

const defaultActivityCapacity = 1000

// ActivityRepository is a bounded ring of the latest events.
type ActivityRepository struct {
	mu       sync.RWMutex
	events   []*domain.ActivityEvent
	capacity int
}

func NewActivityRepository(capacity int) *ActivityRepository {
	if capacity <= 0 {
		capacity = defaultActivityCapacity
	}
	return &ActivityRepository{capacity: capacity}
}

func (r *ActivityRepository) Insert(_ context.Context, event *domain.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *event
	r.events = append(r.events, &c)
	if over := len(r.events) - r.capacity; over > 0 {
		r.events = append(r.events[:0:0], r.events[over:]...)
	}
	return nil
}

func (r *ActivityRepository) Recent(_ context.Context, limit int) ([]*domain.ActivityEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ActivityEvent, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		c := *r.events[i]
		out = append(out, &c)
	}
	return out, nil
}
