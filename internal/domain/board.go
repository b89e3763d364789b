package domain

import "time"

// Board is the top-level entity. It owns an ordered set of columns.
// At least one board must exist once the system is initialized.
type Board struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
