package domain

import (
	"strings"
	"time"
)

// Task belongs to a column. BoardID is denormalized and always equals the
// owning column's board. Position is dense and 0-based within the column.
type Task struct {
	ID          string
	ColumnID    string
	BoardID     string
	Title       string
	Description string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Status is derived from the owning column's name; it is never stored.
	Status string
}

// Known status labels a column name can project onto a task.
const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

// StatusFromColumnName projects a column name onto a task status.
// Column names outside the known set yield no status.
func StatusFromColumnName(name string) string {
	switch s := strings.ToLower(strings.TrimSpace(name)); s {
	case StatusTodo, StatusDoing, StatusDone:
		return s
	default:
		return ""
	}
}
