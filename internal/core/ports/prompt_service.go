package ports

import (
	"context"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// PromptInput holds the editable fields of a prompt version.
type PromptInput struct {
	Title        string
	SystemPrompt string
	UserTemplate string
	Model        string
	Temperature  float64
	MaxTokens    int
	Notes        string
}

type PromptService interface {
	ListTypes(ctx context.Context) ([]domain.PromptTypeSummary, error)
	ListVersions(ctx context.Context, t domain.PromptType) ([]*domain.PromptVersion, error)
	GetVersion(ctx context.Context, id string) (*domain.PromptVersion, error)
	CreateVersion(ctx context.Context, t domain.PromptType, in PromptInput, actor Actor) (*domain.PromptVersion, error)
	UpdateDraft(ctx context.Context, id string, in PromptInput, actor Actor) (*domain.PromptVersion, error)
	Activate(ctx context.Context, id string, actor Actor) (*domain.PromptVersion, error)
}
