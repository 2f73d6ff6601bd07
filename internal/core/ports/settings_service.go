package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

type SettingsService interface {
	// Load never fails on a missing or unreadable blob; it falls back to
	// the defaults.
	Load(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, values map[string]any, actor Actor) (*domain.Settings, error)
}
