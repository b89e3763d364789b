package dto

import "time"

type CreateSubtaskRequest struct {
	// TaskID may come from the URL path instead of the body.
	TaskID string `json:"taskId"`
	Title  string `json:"title" binding:"required"`
}

type UpdateSubtaskRequest struct {
	Title       *string `json:"title"`
	IsCompleted *bool   `json:"isCompleted"`
}

type SubtaskResponse struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SubtaskEnvelope struct {
	Subtask SubtaskResponse `json:"subtask"`
}

type SubtasksEnvelope struct {
	Subtasks []SubtaskResponse `json:"subtasks"`
}
