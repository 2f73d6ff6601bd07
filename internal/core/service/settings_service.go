package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// SettingsValidator checks a settings blob before it is stored.
type SettingsValidator interface {
	Validate(values map[string]any) error
}

// DefaultSettings are served until the form is saved for the first time.
func DefaultSettings() map[string]any {
	return map[string]any{
		"site_name":              "ContentForge",
		"support_email":          "support@contentforge.io",
		"default_model":          "gpt-4o-mini",
		"max_tokens_per_request": json.Number("4000"),
		"signup_token_grant":     json.Number("5000"),
		"allow_registration":     true,
		"maintenance_mode":       false,
	}
}

// SettingsService persists the system settings form as one JSON blob.
type SettingsService struct {
	store     ports.SettingsStore
	validator SettingsValidator
	activity  ports.ActivityRecorder
	log       zerolog.Logger
}

func NewSettingsService(store ports.SettingsStore, validator SettingsValidator, activity ports.ActivityRecorder, log zerolog.Logger) *SettingsService {
	if activity == nil {
		activity = noopRecorder{}
	}
	return &SettingsService{store: store, validator: validator, activity: activity, log: log}
}

// Load returns the stored form, or the defaults when nothing is stored or
// the stored blob cannot be read.
func (s *SettingsService) Load(ctx context.Context) (*domain.Settings, error) {
	blob, err := s.store.Load(ctx, domain.SystemSettingsForm)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Error().Err(err).Str("form", domain.SystemSettingsForm).Msg("failed to read settings, using defaults")
		}
		return defaultSettingsRecord(), nil
	}

	settings, err := decodeSettings(blob)
	if err != nil {
		s.log.Error().Err(err).Str("form", domain.SystemSettingsForm).Msg("stored settings are unreadable, using defaults")
		return defaultSettingsRecord(), nil
	}
	return settings, nil
}

// Save validates values and overwrites the stored blob. The returned record
// is decoded from the stored bytes, so it matches what Load returns later.
func (s *SettingsService) Save(ctx context.Context, values map[string]any, actor ports.Actor) (*domain.Settings, error) {
	if values == nil {
		return nil, fmt.Errorf("%w: settings values are required", domain.ErrValidation)
	}
	if s.validator != nil {
		if err := s.validator.Validate(values); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
		}
	}

	record := domain.Settings{
		Form:      domain.SystemSettingsForm,
		Values:    values,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: actor.Email,
	}
	blob, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	if err := s.store.Save(ctx, domain.SystemSettingsForm, blob); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	saved, err := decodeSettings(blob)
	if err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	s.activity.Enqueue(ports.ActivityInput{Actor: actor, Action: domain.ActionSettingsSaved, Target: domain.SystemSettingsForm})
	s.log.Info().Str("actor", actor.Email).Msg("settings saved")
	return saved, nil
}

func decodeSettings(blob []byte) (*domain.Settings, error) {
	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.UseNumber()

	var settings domain.Settings
	if err := dec.Decode(&settings); err != nil {
		return nil, err
	}
	if settings.Values == nil {
		return nil, errors.New("settings blob has no values")
	}
	if settings.Form == "" {
		settings.Form = domain.SystemSettingsForm
	}
	return &settings, nil
}

func defaultSettingsRecord() *domain.Settings {
	return &domain.Settings{
		Form:   domain.SystemSettingsForm,
		Values: DefaultSettings(),
	}
}
