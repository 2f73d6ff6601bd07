package ports

import "context"

// SettingsStore persists one opaque JSON blob per form key.
type SettingsStore interface {
	// Load returns domain.ErrNotFound when nothing was saved for form.
	Load(ctx context.Context, form string) ([]byte, error)
	// Save overwrites the blob for form.
	Save(ctx context.Context, form string, blob []byte) error
}
