package domain

import "time"

// Column belongs to a board and owns an ordered set of tasks.
// Position is dense and 0-based within the board.
type Column struct {
	ID        string
	BoardID   string
	Name      string
	Color     string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
