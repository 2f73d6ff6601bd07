package domain

import "time"

type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogScheduled BlogStatus = "scheduled"
	BlogPublished BlogStatus = "published"
	BlogFailed    BlogStatus = "failed"
)

// BlogStatuses lists every status in pipeline order.
func BlogStatuses() []BlogStatus {
	return []BlogStatus{BlogDraft, BlogScheduled, BlogPublished, BlogFailed}
}

// BlogPost is a generated article moving through the publishing pipeline.
type BlogPost struct {
	ID           string     `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Slug         string     `json:"slug" yaml:"slug"`
	Keyword      string     `json:"keyword" yaml:"keyword"`
	Status       BlogStatus `json:"status" yaml:"status"`
	WordCount    int        `json:"word_count" yaml:"word_count"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty" yaml:"scheduled_for"`
	PublishedAt  *time.Time `json:"published_at,omitempty" yaml:"published_at"`
}
