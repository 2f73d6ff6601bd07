package domain

import "time"

// SystemSettingsForm is the key of the single persisted settings form.
const SystemSettingsForm = "system_settings"

// Settings is the stored blob of one form's field values.
// Numbers are kept as json.Number so a save/load round trip is exact.
type Settings struct {
	Form      string         `json:"form"`
	Values    map[string]any `json:"values"`
	UpdatedAt time.Time      `json:"updated_at"`
	UpdatedBy string         `json:"updated_by,omitempty"`
}
