package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/contentforge/admin-api/internal/core/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	var c cli
	parser, err := kong.New(&c, kong.Name("adminctl"), kong.Bind(&runContext{out: &out}), kong.Exit(func(int) {}))
	if err != nil {
		t.Fatalf("build parser: %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	err = ctx.Run()
	return out.String(), err
}

func TestRoles(t *testing.T) {
	out, err := run(t, "roles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 roles, got %q", out)
	}
	if lines[0] != "1\tuser" || lines[3] != "4\tsuper_admin" {
		t.Fatalf("unexpected ordering: %q", out)
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--role", "super_admin", "--require", "operator")
	if err != nil {
		t.Fatalf("expected super_admin to satisfy operator: %v", err)
	}
	if out != "ok: super_admin satisfies operator\n" {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := run(t, "check", "--role", "user", "--require", "operator,prompt_manager"); err == nil {
		t.Fatal("expected user to be denied")
	}
	if _, err := run(t, "check", "--role", "guest", "--require", "user"); err == nil {
		t.Fatal("expected unknown role to be rejected")
	}
}

func TestNav(t *testing.T) {
	out, err := run(t, "nav", "--role", "operator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var nav domain.Navigation
	if err := json.Unmarshal([]byte(out), &nav); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if nav.Shell != domain.ShellAdmin {
		t.Fatalf("expected admin shell, got %s", nav.Shell)
	}

	out, err = run(t, "nav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &nav); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if nav.Shell != domain.ShellPublic {
		t.Fatalf("expected public shell, got %s", nav.Shell)
	}
}

func TestSettingsValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`{"site_name":"ContentForge","default_model":"gpt-4o-mini","max_tokens_per_request":4000}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`{"site_name":"ContentForge"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "settings", "validate", good)
	if err != nil {
		t.Fatalf("expected valid document: %v", err)
	}
	if !strings.HasPrefix(out, "ok: ") || !strings.HasSuffix(out, "good.json is valid\n") {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := run(t, "settings", "validate", bad); err == nil {
		t.Fatal("expected missing default_model to fail")
	}
}

func TestSettingsDefaults(t *testing.T) {
	out, err := run(t, "settings", "defaults")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"site_name"`) {
		t.Fatalf("expected defaults JSON, got %q", out)
	}
}
