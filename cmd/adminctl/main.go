package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/service"
	"github.com/contentforge/admin-api/internal/infrastructure/schema"
)

type cli struct {
	Roles    rolesCmd    `cmd:"" help:"List roles in ascending order of privilege."`
	Check    checkCmd    `cmd:"" help:"Check whether a role satisfies a set of required roles."`
	Nav      navCmd      `cmd:"" help:"Print the shell and menu a role is shown."`
	Settings settingsCmd `cmd:"" help:"Inspect and validate the settings form."`
}

type rolesCmd struct{}

type checkCmd struct {
	Role    string   `required:"" help:"Role of the caller."`
	Require []string `required:"" sep:"," help:"Accepted roles; the lowest one decides (comma separated)."`
}

type navCmd struct {
	Role string `help:"Role of the signed-in user; omit for the anonymous shell."`
}

type settingsCmd struct {
	Validate settingsValidateCmd `cmd:"" help:"Validate a settings JSON document against the schema."`
	Defaults settingsDefaultsCmd `cmd:"" help:"Print the default settings values."`
}

type settingsValidateCmd struct {
	File string `arg:"" type:"existingfile" help:"Path to the settings JSON document."`
}

type settingsDefaultsCmd struct{}

// shared by every command so tests can capture output
type runContext struct {
	out io.Writer
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Name("adminctl"),
		kong.Description("Operator utility for the content admin API."),
		kong.UsageOnError(),
		kong.Bind(&runContext{out: os.Stdout}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func (cmd *rolesCmd) Run(rc *runContext) error {
	for _, r := range domain.Roles() {
		fmt.Fprintf(rc.out, "%d\t%s\n", r.Level(), r)
	}
	return nil
}

func (cmd *checkCmd) Run(rc *runContext) error {
	role, err := domain.ParseRole(cmd.Role)
	if err != nil {
		return fmt.Errorf("adminctl: %w", err)
	}
	required := make([]domain.Role, 0, len(cmd.Require))
	for _, r := range cmd.Require {
		required = append(required, domain.Role(strings.TrimSpace(r)))
	}
	if !domain.HasPermission(role, required...) {
		return fmt.Errorf("adminctl: %s does not satisfy %s", role, strings.Join(cmd.Require, ","))
	}
	fmt.Fprintf(rc.out, "ok: %s satisfies %s\n", role, strings.Join(cmd.Require, ","))
	return nil
}

func (cmd *navCmd) Run(rc *runContext) error {
	state := domain.Anonymous()
	if cmd.Role != "" {
		role, err := domain.ParseRole(cmd.Role)
		if err != nil {
			return fmt.Errorf("adminctl: %w", err)
		}
		state = domain.Authenticated(&domain.User{Role: role, Status: domain.UserActive})
	}
	return writeJSON(rc.out, service.NewNavigationService().Resolve(state))
}

func (cmd *settingsValidateCmd) Run(rc *runContext) error {
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("adminctl: read %s: %w", cmd.File, err)
	}
	validator, err := schema.NewSettingsValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateJSON(data); err != nil {
		return err
	}
	fmt.Fprintf(rc.out, "ok: %s is valid\n", cmd.File)
	return nil
}

func (cmd *settingsDefaultsCmd) Run(rc *runContext) error {
	return writeJSON(rc.out, service.DefaultSettings())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
