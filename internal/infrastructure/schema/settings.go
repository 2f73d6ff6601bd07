// Package schema validates the settings form blob against its JSON Schema.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed settings.schema.json
var settingsSchema []byte

const settingsSchemaName = "settings.schema.json"

// SettingsValidator checks settings values against the embedded schema.
type SettingsValidator struct {
	schema *jsonschema.Schema
}

// NewSettingsValidator compiles the embedded schema.
func NewSettingsValidator() (*SettingsValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(settingsSchemaName, bytes.NewReader(settingsSchema)); err != nil {
		return nil, fmt.Errorf("schema: load settings schema: %w", err)
	}
	compiled, err := compiler.Compile(settingsSchemaName)
	if err != nil {
		return nil, fmt.Errorf("schema: compile settings schema: %w", err)
	}
	return &SettingsValidator{schema: compiled}, nil
}

// Validate normalises values through JSON and validates the result.
func (v *SettingsValidator) Validate(values map[string]any) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("schema: marshal settings: %w", err)
	}
	return v.ValidateJSON(data)
}

// ValidateJSON validates a raw settings document.
func (v *SettingsValidator) ValidateJSON(data []byte) error {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("schema: decode settings: %w", err)
	}
	if err := v.schema.Validate(payload); err != nil {
		return fmt.Errorf("settings failed validation: %w", err)
	}
	return nil
}
