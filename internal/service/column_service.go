package service

import (
	"context"
	"strings"
	"time"

	"github.com/RaulLuz/kanban-spec/internal/cache"
	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/position"
	"github.com/RaulLuz/kanban-spec/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ColumnService struct {
	columns repo.ColumnRepo
	boards  repo.BoardRepo
	cache   *cache.Cache
	sf      singleflight.Group
}

// NewColumnService creates a ColumnService. If c is nil, caching is disabled.
func NewColumnService(columns repo.ColumnRepo, boards repo.BoardRepo, c *cache.Cache) *ColumnService {
	return &ColumnService{columns: columns, boards: boards, cache: c}
}

// Create adds a column to a board. With pos nil the column is appended;
// an explicit pos must be within [0, sibling count] and shifts later
// siblings up by one.
func (s *ColumnService) Create(ctx context.Context, boardID, name, color string, pos *int) (dom.Column, error) {
	if err := dom.ValidateColumnName(name); err != nil {
		return dom.Column{}, err
	}
	if color == "" {
		color = DefaultColumnColor
	}
	if err := dom.ValidateColor(color); err != nil {
		return dom.Column{}, err
	}

	if _, err := s.boards.GetByID(ctx, boardID); err != nil {
		return dom.Column{}, storeErr("Board", boardID, "get board", err)
	}

	siblings, err := s.columns.ListByBoard(ctx, boardID)
	if err != nil {
		return dom.Column{}, dom.NewStorageError("list columns", err)
	}

	var (
		columnPos int
		shifts    []position.Update
	)
	if pos == nil {
		columnPos = position.Append(len(siblings))
	} else {
		columnPos = *pos
		shifts, err = position.Insert(columnItems(siblings), columnPos)
		if err != nil {
			return dom.Column{}, dom.NewValidationError("position", "position out of range")
		}
	}

	now := time.Now().UTC()
	col := dom.Column{
		ID:        uuid.NewString(),
		BoardID:   boardID,
		Name:      strings.TrimSpace(name),
		Color:     color,
		Position:  columnPos,
		CreatedAt: now,
		UpdatedAt: now,
	}

	out, err := s.columns.Create(ctx, col, shifts)
	if err != nil {
		return dom.Column{}, dom.NewStorageError("create column", err)
	}
	s.invalidate(ctx, boardID)
	return out, nil
}

func (s *ColumnService) Get(ctx context.Context, id string) (dom.Column, error) {
	c, err := s.columns.GetByID(ctx, id)
	if err != nil {
		return dom.Column{}, storeErr("Column", id, "get column", err)
	}
	return c, nil
}

// ListByBoard returns a board's columns ordered by position.
func (s *ColumnService) ListByBoard(ctx context.Context, boardID string) ([]dom.Column, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("columns:"+boardID, func() (interface{}, error) {
			if list, err := s.cache.GetColumns(ctx, boardID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.columns.ListByBoard(ctx, boardID)
			if err != nil {
				return nil, dom.NewStorageError("list columns", err)
			}
			_ = s.cache.SetColumns(ctx, boardID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Column), nil
	}
	list, err := s.columns.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, dom.NewStorageError("list columns", err)
	}
	return list, nil
}

// Update changes a column's name and/or color. Position is never writable
// here; ordering changes go through the move operations.
func (s *ColumnService) Update(ctx context.Context, id string, name, color *string) (dom.Column, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return dom.Column{}, err
	}
	patch := existing
	if name != nil {
		if err := dom.ValidateColumnName(*name); err != nil {
			return dom.Column{}, err
		}
		patch.Name = strings.TrimSpace(*name)
	}
	if color != nil {
		if err := dom.ValidateColor(*color); err != nil {
			return dom.Column{}, err
		}
		patch.Color = *color
	}
	patch.UpdatedAt = time.Now().UTC()

	out, err := s.columns.Update(ctx, id, patch)
	if err != nil {
		return dom.Column{}, storeErr("Column", id, "update column", err)
	}
	s.invalidate(ctx, existing.BoardID)
	return out, nil
}

// Delete removes a column, cascading to its tasks, and closes the position
// gap among the remaining columns. The last column of a board cannot be
// deleted.
func (s *ColumnService) Delete(ctx context.Context, id string) error {
	col, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	siblings, err := s.columns.ListByBoard(ctx, col.BoardID)
	if err != nil {
		return dom.NewStorageError("list columns", err)
	}
	if len(siblings) == 1 {
		return dom.NewBusinessRuleError("cannot delete the last remaining column in a board")
	}

	shifts := position.Remove(columnItems(siblings), col.Position)
	if err := s.columns.Delete(ctx, id, shifts); err != nil {
		return storeErr("Column", id, "delete column", err)
	}
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
	return nil
}

func (s *ColumnService) invalidate(ctx context.Context, boardID string) {
	if s.cache != nil {
		_ = s.cache.InvalidateColumns(ctx, boardID)
	}
}
