package dto

import "time"

type CreateTaskRequest struct {
	ColumnID    string `json:"columnId" binding:"required"`
	BoardID     string `json:"boardId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	// ColumnID moves the task to the end of another column.
	ColumnID *string `json:"columnId"`
}

type MoveTaskRequest struct {
	TaskID         string `json:"taskId" binding:"required"`
	TargetColumnID string `json:"targetColumnId" binding:"required"`
	NewPosition    *int   `json:"newPosition" binding:"required"`
}

type TaskResponse struct {
	ID          string    `json:"id"`
	ColumnID    string    `json:"columnId"`
	BoardID     string    `json:"boardId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TaskEnvelope struct {
	Task TaskResponse `json:"task"`
}

type TasksEnvelope struct {
	Tasks []TaskResponse `json:"tasks"`
}
