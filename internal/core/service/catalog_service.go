package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

type CatalogService struct {
	products ports.ProductRepository
	keywords ports.KeywordRepository
	blog     ports.BlogRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewCatalogService(
	products ports.ProductRepository,
	keywords ports.KeywordRepository,
	blog ports.BlogRepository,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *CatalogService {
	if activity == nil {
		activity = noopRecorder{}
	}
	return &CatalogService{
		products: products,
		keywords: keywords,
		blog:     blog,
		activity: activity,
		log:      log,
	}
}

// --- Products ---

func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ProductFilter) (ports.Page[*domain.Product], error) {
	filter.Normalize()
	items, total, err := s.products.List(ctx, filter)
	if err != nil {
		return ports.Page[*domain.Product]{}, fmt.Errorf("list products: %w", err)
	}
	return ports.NewPage(items, total, filter.PageRequest), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ports.ProductInput, actor ports.Actor) (*domain.Product, error) {
	if err := validateProductInput(&in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &domain.Product{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProductInput(p, in)

	if err := s.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionProductCreated, Target: p.SKU})
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ports.ProductInput, actor ports.Actor) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateProductInput(&in); err != nil {
		return nil, err
	}
	applyProductInput(p, in)
	p.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionProductUpdated, Target: p.SKU})
	return p, nil
}

func validateProductInput(in *ports.ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.ToUpper(strings.TrimSpace(in.SKU))
	if in.Name == "" || in.SKU == "" {
		return fmt.Errorf("%w: name and sku are required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if in.Currency == "" {
		in.Currency = "USD"
	}
	if in.Status == "" {
		in.Status = domain.ProductDraft
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown product status %q", domain.ErrValidation, in.Status)
	}
	return nil
}

func applyProductInput(p *domain.Product, in ports.ProductInput) {
	p.Name = in.Name
	p.SKU = in.SKU
	p.Category = in.Category
	p.Price = in.Price
	p.Currency = in.Currency
	p.Status = in.Status
	p.Description = in.Description
}

// --- Keywords ---

func (s *CatalogService) ListKeywords(ctx context.Context, filter ports.KeywordFilter) (ports.Page[*domain.Keyword], error) {
	filter.Normalize()
	items, total, err := s.keywords.List(ctx, filter)
	if err != nil {
		return ports.Page[*domain.Keyword]{}, fmt.Errorf("list keywords: %w", err)
	}
	return ports.NewPage(items, total, filter.PageRequest), nil
}

func (s *CatalogService) TrackKeyword(ctx context.Context, in ports.KeywordInput, actor ports.Actor) (*domain.Keyword, error) {
	term := strings.TrimSpace(in.Term)
	if term == "" {
		return nil, fmt.Errorf("%w: term is required", domain.ErrValidation)
	}
	if in.Difficulty < 0 || in.Difficulty > 100 {
		return nil, fmt.Errorf("%w: difficulty must be between 0 and 100", domain.ErrValidation)
	}
	if in.SearchVolume < 0 {
		return nil, fmt.Errorf("%w: search volume cannot be negative", domain.ErrValidation)
	}

	k := &domain.Keyword{
		ID:           uuid.NewString(),
		Term:         term,
		SearchVolume: in.SearchVolume,
		Difficulty:   in.Difficulty,
		URL:          in.URL,
		Status:       domain.KeywordTracking,
		TrackedSince: time.Now().UTC(),
	}
	if err := s.keywords.Create(ctx, k); err != nil {
		return nil, err
	}
	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionKeywordTracked, Target: k.Term})
	return k, nil
}

func (s *CatalogService) UntrackKeyword(ctx context.Context, id string, actor ports.Actor) error {
	if err := s.keywords.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionKeywordRemoved, Target: id})
	return nil
}

// --- Blog ---

func (s *CatalogService) ListBlogPosts(ctx context.Context, filter ports.BlogFilter) (ports.Page[*domain.BlogPost], error) {
	filter.Normalize()
	items, total, err := s.blog.List(ctx, filter)
	if err != nil {
		return ports.Page[*domain.BlogPost]{}, fmt.Errorf("list blog posts: %w", err)
	}
	return ports.NewPage(items, total, filter.PageRequest), nil
}

// BlogSummary counts posts per status; every status is present in the result.
func (s *CatalogService) BlogSummary(ctx context.Context) (map[domain.BlogStatus]int, error) {
	counts, err := s.blog.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("blog summary: %w", err)
	}
	out := make(map[domain.BlogStatus]int, len(domain.BlogStatuses()))
	for _, st := range domain.BlogStatuses() {
		out[st] = counts[st]
	}
	return out, nil
}
