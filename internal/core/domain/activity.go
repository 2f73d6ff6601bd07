package domain

import "time"

// Activity actions recorded for the admin audit feed.
const (
	ActionLogin           = "auth.login"
	ActionLogout          = "auth.logout"
	ActionUserUpdated     = "user.updated"
	ActionPromptCreated   = "prompt.created"
	ActionPromptUpdated   = "prompt.updated"
	ActionPromptActivated = "prompt.activated"
	ActionSettingsSaved   = "settings.saved"
	ActionKeywordTracked  = "keyword.tracked"
	ActionKeywordRemoved  = "keyword.untracked"
	ActionProductCreated  = "product.created"
	ActionProductUpdated  = "product.updated"
)

// ActivityEvent is a single entry of the activity feed.
type ActivityEvent struct {
	ID     string    `json:"id" bson:"_id"`
	Actor  string    `json:"actor" bson:"actor"`
	Role   Role      `json:"role" bson:"role"`
	Action string    `json:"action" bson:"action"`
	Target string    `json:"target,omitempty" bson:"target,omitempty"`
	At     time.Time `json:"at" bson:"at"`
}
