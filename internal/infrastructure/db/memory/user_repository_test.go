package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

func testUsers() []*domain.User {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*domain.User{
		{ID: "u1", Email: "ada@example.com", Name: "Ada", Role: domain.RoleSuperAdmin, Status: domain.UserActive, CreatedAt: base},
		{ID: "u2", Email: "bob@example.com", Name: "bob", Role: domain.RoleUser, Status: domain.UserActive, TokenBalance: 50, CreatedAt: base.Add(time.Hour)},
		{ID: "u3", Email: "cy@example.com", Name: "Cy", Role: domain.RoleUser, Status: domain.UserSuspended, TokenBalance: 10, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestUserRepository_FindByEmail_CaseSensitive(t *testing.T) {
	repo := NewUserRepository(testUsers())
	ctx := context.Background()

	u, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = repo.FindByEmail(ctx, "ADA@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository(testUsers())
	ctx := context.Background()

	u, err := repo.FindByID(ctx, "u2")
	require.NoError(t, err)
	u.Name = "mutated"

	again, err := repo.FindByID(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "bob", again.Name)
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(testUsers())
	ctx := context.Background()

	all, total, err := repo.List(ctx, ports.UserFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"u1", "u2", "u3"}, ids(all))

	byRole, total, err := repo.List(ctx, ports.UserFilter{Role: domain.RoleUser, Status: domain.UserActive})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []string{"u2"}, ids(byRole))

	search, _, err := repo.List(ctx, ports.UserFilter{Search: "BOB"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, ids(search))

	sorted, _, err := repo.List(ctx, ports.UserFilter{PageRequest: ports.PageRequest{SortBy: "token_balance", SortDesc: true}})
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u3", "u1"}, ids(sorted))

	paged, total, err := repo.List(ctx, ports.UserFilter{PageRequest: ports.PageRequest{Page: 2, Limit: 2}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"u3"}, ids(paged))
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(testUsers())
	ctx := context.Background()

	u, err := repo.FindByID(ctx, "u3")
	require.NoError(t, err)
	u.Status = domain.UserActive
	require.NoError(t, repo.Update(ctx, u))

	counts, err := repo.CountByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.RoleUser])

	u.Email = "renamed@example.com"
	assert.ErrorIs(t, repo.Update(ctx, u), domain.ErrUserNotFound)
}

func ids(users []*domain.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}
