package domain

import "time"

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductDraft    ProductStatus = "draft"
	ProductArchived ProductStatus = "archived"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductDraft, ProductArchived:
		return true
	}
	return false
}

// Product is an item of the subscription/credit catalog.
type Product struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	SKU         string        `json:"sku" yaml:"sku"`
	Category    string        `json:"category" yaml:"category"`
	Price       float64       `json:"price" yaml:"price"`
	Currency    string        `json:"currency" yaml:"currency"`
	Status      ProductStatus `json:"status" yaml:"status"`
	Description string        `json:"description,omitempty" yaml:"description"`
	CreatedAt   time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" yaml:"updated_at"`
}
