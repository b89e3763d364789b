package domain

import "time"

// Subtask belongs to a task. Position is dense and 0-based within the task.
type Subtask struct {
	ID          string
	TaskID      string
	Title       string
	IsCompleted bool
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
