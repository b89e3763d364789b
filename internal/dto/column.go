package dto

import "time"

type CreateColumnRequest struct {
	BoardID string `json:"boardId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	// Color defaults to the application accent when omitted.
	Color string `json:"color"`
	// Position appends when omitted; explicit values are range-checked.
	Position *int `json:"position"`
}

type UpdateColumnRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type ColumnResponse struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ColumnEnvelope struct {
	Column ColumnResponse `json:"column"`
}

type ColumnsEnvelope struct {
	Columns []ColumnResponse `json:"columns"`
}
