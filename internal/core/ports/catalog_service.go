package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

type ProductInput struct {
	Name        string
	SKU         string
	Category    string
	Price       float64
	Currency    string
	Status      domain.ProductStatus
	Description string
}

type KeywordInput struct {
	Term         string
	SearchVolume int
	Difficulty   int
	URL          string
}

// CatalogService serves the product, keyword and blog screens.
type CatalogService interface {
	ListProducts(ctx context.Context, filter ProductFilter) (Page[*domain.Product], error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in ProductInput, actor Actor) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput, actor Actor) (*domain.Product, error)

	ListKeywords(ctx context.Context, filter KeywordFilter) (Page[*domain.Keyword], error)
	TrackKeyword(ctx context.Context, in KeywordInput, actor Actor) (*domain.Keyword, error)
	UntrackKeyword(ctx context.Context, id string, actor Actor) error

	ListBlogPosts(ctx context.Context, filter BlogFilter) (Page[*domain.BlogPost], error)
	BlogSummary(ctx context.Context) (map[domain.BlogStatus]int, error)
}
