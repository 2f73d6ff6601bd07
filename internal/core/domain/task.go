package domain

import "time"

type TaskStatus string

const (
	TaskQueued    TaskStatus = "queued"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// TaskStatuses lists every status in lifecycle order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskQueued, TaskRunning, TaskCompleted, TaskFailed}
}

// GenerationTask is one content-generation job submitted by a user.
type GenerationTask struct {
	ID          string     `json:"id" yaml:"id"`
	UserID      string     `json:"user_id" yaml:"user_id"`
	Type        PromptType `json:"type" yaml:"type"`
	Status      TaskStatus `json:"status" yaml:"status"`
	TokensUsed  int64      `json:"tokens_used" yaml:"tokens_used"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at"`
}

// TaskStats aggregates a set of tasks.
type TaskStats struct {
	Total      int                `json:"total"`
	ByStatus   map[TaskStatus]int `json:"by_status"`
	TokensUsed int64              `json:"tokens_used"`
}
