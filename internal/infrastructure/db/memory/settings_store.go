package memory

import (
	"context"
	"sync"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// SettingsStore keeps one blob per form key.
type SettingsStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{blobs: make(map[string][]byte)}
}

func (s *SettingsStore) Load(_ context.Context, form string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[form]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (s *SettingsStore) Save(_ context.Context, form string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[form] = append([]byte(nil), blob...)
	return nil
}
