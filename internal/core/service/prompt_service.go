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

const (
	maxPromptTokens = 32000
	maxTemperature  = 2.0
	defaultModel    = "gpt-4o-mini"
)

type PromptService struct {
	repo     ports.PromptRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewPromptService(repo ports.PromptRepository, activity ports.ActivityRecorder, log zerolog.Logger) *PromptService {
	if activity == nil {
		activity = noopRecorder{}
	}
	return &PromptService{repo: repo, activity: activity, log: log}
}

// ListTypes summarises every editor tab, including tabs with no versions yet.
func (s *PromptService) ListTypes(ctx context.Context) ([]domain.PromptTypeSummary, error) {
	out := make([]domain.PromptTypeSummary, 0, len(domain.PromptTypes()))
	for _, t := range domain.PromptTypes() {
		versions, err := s.repo.ListByType(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("list prompt types: %w", err)
		}
		summary := domain.PromptTypeSummary{PromptType: t, TotalVersions: len(versions)}
		for _, v := range versions {
			if v.Version > summary.LatestVersion {
				summary.LatestVersion = v.Version
			}
			if v.Status == domain.VersionActive {
				summary.ActiveVersion = v.Version
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *PromptService) ListVersions(ctx context.Context, t domain.PromptType) ([]*domain.PromptVersion, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown prompt type %q", domain.ErrNotFound, t)
	}
	return s.repo.ListByType(ctx, t)
}

func (s *PromptService) GetVersion(ctx context.Context, id string) (*domain.PromptVersion, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateVersion stores a new draft with the next version number of t.
func (s *PromptService) CreateVersion(ctx context.Context, t domain.PromptType, in ports.PromptInput, actor ports.Actor) (*domain.PromptVersion, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown prompt type %q", domain.ErrNotFound, t)
	}
	if err := validatePromptInput(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	v := &domain.PromptVersion{
		ID:         uuid.NewString(),
		PromptType: t,
		Status:     domain.VersionDraft,
		CreatedBy:  actor.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyPromptInput(v, in)

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create prompt version: %w", err)
	}

	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionPromptCreated, Target: versionTarget(v)})
	s.log.Info().Str("prompt_type", string(t)).Int("version", v.Version).Msg("prompt version created")
	return v, nil
}

// UpdateDraft edits a draft in place; active and archived versions are frozen.
func (s *PromptService) UpdateDraft(ctx context.Context, id string, in ports.PromptInput, actor ports.Actor) (*domain.PromptVersion, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.Editable() {
		return nil, domain.ErrVersionNotEditable
	}
	if err := validatePromptInput(&in); err != nil {
		return nil, err
	}

	applyPromptInput(v, in)
	v.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("update prompt version: %w", err)
	}

	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionPromptUpdated, Target: versionTarget(v)})
	return v, nil
}

// Activate publishes a version; the previous active version is archived.
func (s *PromptService) Activate(ctx context.Context, id string, actor ports.Actor) (*domain.PromptVersion, error) {
	v, err := s.repo.Activate(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionPromptActivated, Target: versionTarget(v)})
	s.log.Info().Str("prompt_type", string(v.PromptType)).Int("version", v.Version).Str("actor", actor.Email).Msg("prompt version activated")
	return v, nil
}

func validatePromptInput(in *ports.PromptInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.SystemPrompt = strings.TrimSpace(in.SystemPrompt)
	if in.SystemPrompt == "" {
		return fmt.Errorf("%w: system prompt is required", domain.ErrValidation)
	}
	if in.Temperature < 0 || in.Temperature > maxTemperature {
		return fmt.Errorf("%w: temperature must be between 0 and %.0f", domain.ErrValidation, maxTemperature)
	}
	if in.MaxTokens < 1 || in.MaxTokens > maxPromptTokens {
		return fmt.Errorf("%w: max tokens must be between 1 and %d", domain.ErrValidation, maxPromptTokens)
	}
	if in.Model == "" {
		in.Model = defaultModel
	}
	return nil
}

func applyPromptInput(v *domain.PromptVersion, in ports.PromptInput) {
	v.Title = in.Title
	v.SystemPrompt = in.SystemPrompt
	v.UserTemplate = in.UserTemplate
	v.Model = in.Model
	v.Temperature = in.Temperature
	v.MaxTokens = in.MaxTokens
	v.Notes = in.Notes
}

func versionTarget(v *domain.PromptVersion) string {
	return fmt.Sprintf("%s@v%d", v.PromptType, v.Version)
}
