package domain

// Shell is the top-level layout the dashboard renders.
type Shell string

const (
	ShellPublic    Shell = "public"
	ShellDashboard Shell = "dashboard"
	ShellAdmin     Shell = "admin"
)

// MenuItem is one navigation entry of a shell.
type MenuItem struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Path    string `json:"path"`
	MinRole Role   `json:"min_role,omitempty"`
}

// Navigation is the resolved layout for the current auth state.
type Navigation struct {
	Shell Shell      `json:"shell"`
	Role  Role       `json:"role,omitempty"`
	Items []MenuItem `json:"items"`
}
