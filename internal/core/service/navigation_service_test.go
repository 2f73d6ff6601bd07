package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentforge/admin-api/internal/core/domain"
)

func signedIn(role domain.Role) domain.AuthState {
	return domain.AuthState{
		User:            &domain.User{ID: "usr_x", Email: "x@contentforge.io", Role: role},
		IsAuthenticated: true,
	}
}

func menuKeys(nav domain.Navigation) []string {
	keys := make([]string, 0, len(nav.Items))
	for _, item := range nav.Items {
		keys = append(keys, item.Key)
	}
	return keys
}

func TestNavigationService_Resolve(t *testing.T) {
	svc := NewNavigationService()

	tests := []struct {
		name  string
		state domain.AuthState
		shell domain.Shell
		keys  []string
	}{
		{
			name:  "anonymous",
			state: domain.Anonymous(),
			shell: domain.ShellPublic,
			keys:  []string{"login", "pricing"},
		},
		{
			name:  "loading",
			state: domain.AuthState{IsLoading: true},
			shell: domain.ShellPublic,
			keys:  []string{"login", "pricing"},
		},
		{
			name:  "user",
			state: signedIn(domain.RoleUser),
			shell: domain.ShellDashboard,
			keys:  []string{"home", "generate", "tasks", "billing", "profile"},
		},
		{
			name:  "operator",
			state: signedIn(domain.RoleOperator),
			shell: domain.ShellAdmin,
			keys:  []string{"overview", "tasks", "keywords", "blog", "products"},
		},
		{
			name:  "prompt manager",
			state: signedIn(domain.RolePromptManager),
			shell: domain.ShellAdmin,
			keys:  []string{"overview", "tasks", "keywords", "blog", "products", "prompts"},
		},
		{
			name:  "super admin",
			state: signedIn(domain.RoleSuperAdmin),
			shell: domain.ShellAdmin,
			keys:  []string{"overview", "tasks", "keywords", "blog", "products", "prompts", "users", "settings", "activity"},
		},
		{
			name:  "unknown role",
			state: signedIn("guest"),
			shell: domain.ShellPublic,
			keys:  []string{"login", "pricing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := svc.Resolve(tt.state)
			assert.Equal(t, tt.shell, nav.Shell)
			assert.Equal(t, tt.keys, menuKeys(nav))
		})
	}
}

func TestNavigationService_Resolve_DoesNotLeakMenu(t *testing.T) {
	svc := NewNavigationService()

	nav := svc.Resolve(domain.Anonymous())
	require.NotEmpty(t, nav.Items)
	nav.Items[0].Label = "changed"

	again := svc.Resolve(domain.Anonymous())
	assert.Equal(t, "Sign in", again.Items[0].Label)
}
