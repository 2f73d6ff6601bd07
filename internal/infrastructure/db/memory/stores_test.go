package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentforge/admin-api/internal/core/domain"
)

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(time.Minute)}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "s1"}))
	require.NoError(t, store.Delete(ctx, "s1"))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSettingsStore_CopiesBlobs(t *testing.T) {
	store := NewSettingsStore()
	ctx := context.Background()

	_, err := store.Load(ctx, domain.SystemSettingsForm)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	blob := []byte(`{"values":{}}`)
	require.NoError(t, store.Save(ctx, domain.SystemSettingsForm, blob))
	blob[0] = 'X'

	got, err := store.Load(ctx, domain.SystemSettingsForm)
	require.NoError(t, err)
	assert.Equal(t, `{"values":{}}`, string(got))
}

func TestPromptRepository_ConcurrentCreate(t *testing.T) {
	repo := NewPromptRepository(nil)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := &domain.PromptVersion{ID: fmt.Sprintf("p%d", i), PromptType: domain.PromptSEOMeta, Status: domain.VersionDraft}
			assert.NoError(t, repo.Create(ctx, v))
		}(i)
	}
	wg.Wait()

	versions, err := repo.ListByType(ctx, domain.PromptSEOMeta)
	require.NoError(t, err)
	require.Len(t, versions, n)

	seen := make(map[int]bool, n)
	for _, v := range versions {
		assert.False(t, seen[v.Version], "duplicate version %d", v.Version)
		seen[v.Version] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "missing version %d", i)
	}
}

func TestPromptRepository_Activate(t *testing.T) {
	repo := NewPromptRepository([]*domain.PromptVersion{
		{ID: "a", PromptType: domain.PromptBlogArticle, Version: 1, Status: domain.VersionActive},
		{ID: "b", PromptType: domain.PromptBlogArticle, Version: 2, Status: domain.VersionDraft},
		{ID: "c", PromptType: domain.PromptSEOMeta, Version: 1, Status: domain.VersionActive},
	})
	ctx := context.Background()

	v, err := repo.Activate(ctx, "b", time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.VersionActive, v.Status)

	a, _ := repo.FindByID(ctx, "a")
	c, _ := repo.FindByID(ctx, "c")
	assert.Equal(t, domain.VersionArchived, a.Status)
	assert.Equal(t, domain.VersionActive, c.Status)

	_, err = repo.Activate(ctx, "missing", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepository_Bounded(t *testing.T) {
	repo := NewActivityRepository(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, &domain.ActivityEvent{ID: fmt.Sprintf("e%d", i)}))
	}

	events, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	got := make([]string, 0, len(events))
	for _, e := range events {
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"e4", "e3", "e2"}, got)
}
