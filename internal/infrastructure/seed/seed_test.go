package seed

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/contentforge/admin-api/internal/core/domain"
)

const testPassword = "password123"

func TestLoad_Fixtures(t *testing.T) {
	data, err := Load(Options{Password: testPassword, BcryptCost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(data.Users) != 6 {
		t.Fatalf("expected 6 users, got %d", len(data.Users))
	}
	seenRoles := make(map[domain.Role]bool)
	for _, u := range data.Users {
		seenRoles[u.Role] = true
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(testPassword)); err != nil {
			t.Fatalf("user %s does not accept the mock password", u.Email)
		}
	}
	for _, r := range domain.Roles() {
		if !seenRoles[r] {
			t.Errorf("no seeded user has role %s", r)
		}
	}

	active := make(map[domain.PromptType]int)
	for _, p := range data.Prompts {
		if p.Status == domain.VersionActive {
			active[p.PromptType]++
		}
	}
	for pt, n := range active {
		if n != 1 {
			t.Errorf("prompt type %s has %d active versions", pt, n)
		}
	}

	if len(data.Products) == 0 || len(data.Keywords) == 0 || len(data.BlogPosts) == 0 || len(data.Tasks) == 0 {
		t.Fatal("expected every catalog collection to be seeded")
	}
}

func TestLoad_RequiresPassword(t *testing.T) {
	if _, err := Load(Options{}); err == nil {
		t.Fatal("expected an error without a mock password")
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "unknown role",
			raw:  "users:\n  - id: u1\n    email: a@b.c\n    role: root\n",
			want: "invalid role",
		},
		{
			name: "duplicate email",
			raw:  "users:\n  - id: u1\n    email: a@b.c\n    role: user\n  - id: u2\n    email: a@b.c\n    role: user\n",
			want: "duplicate user email",
		},
		{
			name: "two active versions",
			raw: "prompts:\n" +
				"  - id: p1\n    prompt_type: seo_meta\n    version: 1\n    status: active\n" +
				"  - id: p2\n    prompt_type: seo_meta\n    version: 2\n    status: active\n",
			want: "two active versions",
		},
		{
			name: "unknown prompt type",
			raw:  "prompts:\n  - id: p1\n    prompt_type: newsletter\n    version: 1\n",
			want: "unknown type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.raw), Options{Password: testPassword, BcryptCost: bcrypt.MinCost})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
