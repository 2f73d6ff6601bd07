package service

import "github.com/contentforge/admin-api/internal/core/domain"

var publicMenu = []domain.MenuItem{
	{Key: "login", Label: "Sign in", Path: "/login"},
	{Key: "pricing", Label: "Pricing", Path: "/pricing"},
}

var dashboardMenu = []domain.MenuItem{
	{Key: "home", Label: "Dashboard", Path: "/dashboard", MinRole: domain.RoleUser},
	{Key: "generate", Label: "Generate content", Path: "/dashboard/generate", MinRole: domain.RoleUser},
	{Key: "tasks", Label: "My tasks", Path: "/dashboard/tasks", MinRole: domain.RoleUser},
	{Key: "billing", Label: "Tokens & billing", Path: "/dashboard/billing", MinRole: domain.RoleUser},
	{Key: "profile", Label: "Profile", Path: "/dashboard/profile", MinRole: domain.RoleUser},
}

var adminMenu = []domain.MenuItem{
	{Key: "overview", Label: "Overview", Path: "/admin", MinRole: domain.RoleOperator},
	{Key: "tasks", Label: "Tasks", Path: "/admin/tasks", MinRole: domain.RoleOperator},
	{Key: "keywords", Label: "Keyword tracking", Path: "/admin/keywords", MinRole: domain.RoleOperator},
	{Key: "blog", Label: "Blog status", Path: "/admin/blog", MinRole: domain.RoleOperator},
	{Key: "products", Label: "Products", Path: "/admin/products", MinRole: domain.RoleOperator},
	{Key: "prompts", Label: "Prompt versions", Path: "/admin/prompts", MinRole: domain.RolePromptManager},
	{Key: "users", Label: "Users", Path: "/admin/users", MinRole: domain.RoleSuperAdmin},
	{Key: "settings", Label: "System settings", Path: "/admin/settings", MinRole: domain.RoleSuperAdmin},
	{Key: "activity", Label: "Activity", Path: "/admin/activity", MinRole: domain.RoleSuperAdmin},
}

// NavigationService picks the shell and menu for an auth state.
type NavigationService struct{}

func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

// Resolve branches on authentication first, then on role: plain users get
// the end-user dashboard, everyone from operator upwards the admin shell.
func (s *NavigationService) Resolve(state domain.AuthState) domain.Navigation {
	if !state.IsAuthenticated || state.User == nil || !state.User.Role.Valid() {
		return domain.Navigation{Shell: domain.ShellPublic, Items: cloneMenu(publicMenu)}
	}

	role := state.User.Role
	shell, menu := domain.ShellDashboard, dashboardMenu
	if domain.HasPermission(role, domain.RoleOperator) {
		shell, menu = domain.ShellAdmin, adminMenu
	}

	items := make([]domain.MenuItem, 0, len(menu))
	for _, item := range menu {
		if domain.HasPermission(role, item.MinRole) {
			items = append(items, item)
		}
	}
	return domain.Navigation{Shell: shell, Role: role, Items: items}
}

func cloneMenu(items []domain.MenuItem) []domain.MenuItem {
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out
}
