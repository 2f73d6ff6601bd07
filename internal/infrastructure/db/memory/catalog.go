package memory

import (
	"cmp"
	"context"
	"strings"
	"sync"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

var productOrder = map[string]func(a, b *domain.Product) int{
	"name":       func(a, b *domain.Product) int { return compareFold(a.Name, b.Name) },
	"price":      func(a, b *domain.Product) int { return cmp.Compare(a.Price, b.Price) },
	"created_at": func(a, b *domain.Product) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// ProductRepository keeps products in insertion order.
type ProductRepository struct {
	mu    sync.RWMutex
	items []*domain.Product
}

func NewProductRepository(seed []*domain.Product) *ProductRepository {
	r := &ProductRepository{}
	for _, p := range seed {
		c := *p
		r.items = append(r.items, &c)
	}
	return r
}

func (r *ProductRepository) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, int64, error) {
	r.mu.RLock()
	matched := make([]*domain.Product, 0, len(r.items))
	for _, p := range r.items {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Search != "" && !containsFold(p.Name, f.Search) && !containsFold(p.SKU, f.Search) {
			continue
		}
		c := *p
		matched = append(matched, &c)
	}
	r.mu.RUnlock()

	sortBy(matched, f.SortBy, f.SortDesc, "created_at", productOrder)
	return paginate(matched, f.PageRequest), int64(len(matched)), nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create rejects a SKU that is already in the catalog.
func (r *ProductRepository) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.ID == p.ID || strings.EqualFold(existing.SKU, p.SKU) {
			return domain.ErrConflict
		}
	}
	c := *p
	r.items = append(r.items, &c)
	return nil
}

func (r *ProductRepository) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i, existing := range r.items {
		if existing.ID == p.ID {
			idx = i
			continue
		}
		if strings.EqualFold(existing.SKU, p.SKU) {
			return domain.ErrConflict
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	c := *p
	r.items[idx] = &c
	return nil
}

var keywordOrder = map[string]func(a, b *domain.Keyword) int{
	"term":          func(a, b *domain.Keyword) int { return compareFold(a.Term, b.Term) },
	"search_volume": func(a, b *domain.Keyword) int { return cmp.Compare(a.SearchVolume, b.SearchVolume) },
	"difficulty":    func(a, b *domain.Keyword) int { return cmp.Compare(a.Difficulty, b.Difficulty) },
	"rank":          func(a, b *domain.Keyword) int { return compareRank(a.Rank, b.Rank) },
	"tracked_since": func(a, b *domain.Keyword) int { return a.TrackedSince.Compare(b.TrackedSince) },
}

// compareRank puts unranked (0) keywords after every ranked one.
func compareRank(a, b int) int {
	switch {
	case a == b:
		return 0
	case a == 0:
		return 1
	case b == 0:
		return -1
	}
	return cmp.Compare(a, b)
}

type KeywordRepository struct {
	mu    sync.RWMutex
	items []*domain.Keyword
}

func NewKeywordRepository(seed []*domain.Keyword) *KeywordRepository {
	r := &KeywordRepository{}
	for _, k := range seed {
		c := *k
		r.items = append(r.items, &c)
	}
	return r
}

func (r *KeywordRepository) List(_ context.Context, f ports.KeywordFilter) ([]*domain.Keyword, int64, error) {
	r.mu.RLock()
	matched := make([]*domain.Keyword, 0, len(r.items))
	for _, k := range r.items {
		if f.Status != "" && k.Status != f.Status {
			continue
		}
		if f.Search != "" && !containsFold(k.Term, f.Search) {
			continue
		}
		c := *k
		matched = append(matched, &c)
	}
	r.mu.RUnlock()

	sortBy(matched, f.SortBy, f.SortDesc, "rank", keywordOrder)
	return paginate(matched, f.PageRequest), int64(len(matched)), nil
}

// Create treats terms case-insensitively.
func (r *KeywordRepository) Create(_ context.Context, k *domain.Keyword) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if strings.EqualFold(existing.Term, k.Term) {
			return domain.ErrConflict
		}
	}
	c := *k
	r.items = append(r.items, &c)
	return nil
}

func (r *KeywordRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, k := range r.items {
		if k.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *KeywordRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

var blogOrder = map[string]func(a, b *domain.BlogPost) int{
	"title":         func(a, b *domain.BlogPost) int { return compareFold(a.Title, b.Title) },
	"word_count":    func(a, b *domain.BlogPost) int { return cmp.Compare(a.WordCount, b.WordCount) },
	"scheduled_for": func(a, b *domain.BlogPost) int { return compareTimePtr(a.ScheduledFor, b.ScheduledFor) },
	"published_at":  func(a, b *domain.BlogPost) int { return compareTimePtr(a.PublishedAt, b.PublishedAt) },
}

// BlogRepository is read-only; posts come from the seed fixtures.
type BlogRepository struct {
	items []*domain.BlogPost
}

func NewBlogRepository(seed []*domain.BlogPost) *BlogRepository {
	r := &BlogRepository{}
	for _, p := range seed {
		c := *p
		r.items = append(r.items, &c)
	}
	return r
}

func (r *BlogRepository) List(_ context.Context, f ports.BlogFilter) ([]*domain.BlogPost, int64, error) {
	matched := make([]*domain.BlogPost, 0, len(r.items))
	for _, p := range r.items {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Search != "" && !containsFold(p.Title, f.Search) && !containsFold(p.Keyword, f.Search) {
			continue
		}
		c := *p
		matched = append(matched, &c)
	}
	sortBy(matched, f.SortBy, f.SortDesc, "title", blogOrder)
	return paginate(matched, f.PageRequest), int64(len(matched)), nil
}

func (r *BlogRepository) CountByStatus(_ context.Context) (map[domain.BlogStatus]int, error) {
	out := make(map[domain.BlogStatus]int)
	for _, p := range r.items {
		out[p.Status]++
	}
	return out, nil
}

var taskOrder = map[string]func(a, b *domain.GenerationTask) int{
	"created_at":  func(a, b *domain.GenerationTask) int { return a.CreatedAt.Compare(b.CreatedAt) },
	"tokens_used": func(a, b *domain.GenerationTask) int { return cmp.Compare(a.TokensUsed, b.TokensUsed) },
	"status":      func(a, b *domain.GenerationTask) int { return cmp.Compare(a.Status, b.Status) },
}

// TaskRepository is read-only; tasks come from the seed fixtures.
type TaskRepository struct {
	items []*domain.GenerationTask
}

func NewTaskRepository(seed []*domain.GenerationTask) *TaskRepository {
	r := &TaskRepository{}
	for _, t := range seed {
		c := *t
		r.items = append(r.items, &c)
	}
	return r
}

func (r *TaskRepository) List(_ context.Context, f ports.TaskFilter) ([]*domain.GenerationTask, int64, error) {
	matched := make([]*domain.GenerationTask, 0, len(r.items))
	for _, t := range r.items {
		if f.UserID != "" && t.UserID != f.UserID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		c := *t
		matched = append(matched, &c)
	}
	// newest first unless asked otherwise
	desc := f.SortDesc
	if f.SortBy == "" {
		desc = true
	}
	sortBy(matched, f.SortBy, desc, "created_at", taskOrder)
	return paginate(matched, f.PageRequest), int64(len(matched)), nil
}

func (r *TaskRepository) Stats(_ context.Context, userID string) (domain.TaskStats, error) {
	stats := domain.TaskStats{ByStatus: make(map[domain.TaskStatus]int, len(domain.TaskStatuses()))}
	for _, st := range domain.TaskStatuses() {
		stats.ByStatus[st] = 0
	}
	for _, t := range r.items {
		if userID != "" && t.UserID != userID {
			continue
		}
		stats.Total++
		stats.ByStatus[t.Status]++
		stats.TokensUsed += t.TokensUsed
	}
	return stats, nil
}
