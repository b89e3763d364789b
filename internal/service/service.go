// Package service orchestrates validation, position reindex planning and the
// entity store per entity type. Services return typed domain errors only:
// anything they cannot classify is wrapped as a StorageError.
package service

import (
	"errors"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/position"
	"github.com/RaulLuz/kanban-spec/internal/repo"
)

// Default columns created with every new board.
var DefaultColumnNames = []string{"Todo", "Doing", "Done"}

const DefaultColumnColor = "#635FC7"

// storeErr maps a repo error: not-found rows become NotFoundError for the
// given entity, everything else is wrapped as StorageError.
func storeErr(entity, id, op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return dom.NewNotFoundError(entity, id)
	}
	return dom.NewStorageError(op, err)
}

func columnItems(list []dom.Column) []position.Item {
	items := make([]position.Item, len(list))
	for i, c := range list {
		items[i] = position.Item{ID: c.ID, Pos: c.Position}
	}
	return items
}

func taskItems(list []dom.Task) []position.Item {
	items := make([]position.Item, len(list))
	for i, t := range list {
		items[i] = position.Item{ID: t.ID, Pos: t.Position}
	}
	return items
}

func subtaskItems(list []dom.Subtask) []position.Item {
	items := make([]position.Item, len(list))
	for i, s := range list {
		items[i] = position.Item{ID: s.ID, Pos: s.Position}
	}
	return items
}
