package domain

import "time"

// PromptType identifies one tab of the prompt editor.
type PromptType string

const (
	PromptBlogArticle        PromptType = "blog_article"
	PromptProductDescription PromptType = "product_description"
	PromptSEOMeta            PromptType = "seo_meta"
	PromptSocialPost         PromptType = "social_post"
)

// PromptTypes lists the editor tabs in display order.
func PromptTypes() []PromptType {
	return []PromptType{PromptBlogArticle, PromptProductDescription, PromptSEOMeta, PromptSocialPost}
}

// Valid reports whether t is a known prompt type.
func (t PromptType) Valid() bool {
	for _, known := range PromptTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// VersionStatus is the lifecycle state of a prompt version.
type VersionStatus string

const (
	VersionDraft    VersionStatus = "draft"
	VersionActive   VersionStatus = "active"
	VersionArchived VersionStatus = "archived"
)

// PromptVersion is one saved revision of a prompt configuration.
// At most one version per PromptType is active at a time.
type PromptVersion struct {
	ID           string        `json:"id" bson:"_id"`
	PromptType   PromptType    `json:"prompt_type" bson:"prompt_type"`
	Version      int           `json:"version" bson:"version"`
	Title        string        `json:"title" bson:"title"`
	SystemPrompt string        `json:"system_prompt" bson:"system_prompt"`
	UserTemplate string        `json:"user_template" bson:"user_template"`
	Model        string        `json:"model" bson:"model"`
	Temperature  float64       `json:"temperature" bson:"temperature"`
	MaxTokens    int           `json:"max_tokens" bson:"max_tokens"`
	Status       VersionStatus `json:"status" bson:"status"`
	Notes        string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedBy    string        `json:"created_by" bson:"created_by"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}

// Editable reports whether the version may still be changed in place.
func (v *PromptVersion) Editable() bool {
	return v.Status == VersionDraft
}

// PromptTypeSummary is one row of the prompt editor's tab strip.
type PromptTypeSummary struct {
	PromptType    PromptType `json:"prompt_type"`
	ActiveVersion int        `json:"active_version"`
	TotalVersions int        `json:"total_versions"`
	LatestVersion int        `json:"latest_version"`
}
