package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// SettingsStore persists form blobs without expiry.
// Key format: settings:<form>
type SettingsStore struct {
	client *redis.Client
}

func NewSettingsStore(client *redis.Client) *SettingsStore {
	return &SettingsStore{client: client}
}

func (s *SettingsStore) Load(ctx context.Context, form string) ([]byte, error) {
	blob, err := s.client.Get(ctx, s.key(form)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return blob, nil
}

func (s *SettingsStore) Save(ctx context.Context, form string, blob []byte) error {
	if err := s.client.Set(ctx, s.key(form), blob, 0).Err(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *SettingsStore) key(form string) string {
	return "settings:" + form
}
