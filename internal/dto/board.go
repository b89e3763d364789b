package dto

import "time"

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBoardRequest struct {
	Name *string `json:"name"`
}

type BoardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BoardEnvelope struct {
	Board BoardResponse `json:"board"`
}

type BoardsEnvelope struct {
	Boards []BoardResponse `json:"boards"`
}
