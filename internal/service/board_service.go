package service

import (
	"context"
	"strings"
	"time"

	"github.com/RaulLuz/kanban-spec/internal/cache"
	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type BoardService struct {
	boards repo.BoardRepo
	cache  *cache.Cache
	sf     singleflight.Group
}

// NewBoardService creates a BoardService. If c is nil, caching is disabled.
func NewBoardService(boards repo.BoardRepo, c *cache.Cache) *BoardService {
	return &BoardService{boards: boards, cache: c}
}

// Create makes a new board with the default Todo/Doing/Done columns.
func (s *BoardService) Create(ctx context.Context, name string) (dom.Board, error) {
	if err := dom.ValidateBoardName(name); err != nil {
		return dom.Board{}, err
	}

	now := time.Now().UTC()
	board := dom.Board{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	defaultColumns := make([]dom.Column, len(DefaultColumnNames))
	for i, columnName := range DefaultColumnNames {
		defaultColumns[i] = dom.Column{
			ID:        uuid.NewString(),
			BoardID:   board.ID,
			Name:      columnName,
			Color:     DefaultColumnColor,
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	out, err := s.boards.Create(ctx, board, defaultColumns)
	if err != nil {
		return dom.Board{}, dom.NewStorageError("create board", err)
	}
	s.invalidate(ctx)
	return out, nil
}

func (s *BoardService) Get(ctx context.Context, id string) (dom.Board, error) {
	b, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return dom.Board{}, storeErr("Board", id, "get board", err)
	}
	return b, nil
}

// List returns all boards ordered by creation time.
func (s *BoardService) List(ctx context.Context) ([]dom.Board, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("boards", func() (interface{}, error) {
			if list, err := s.cache.GetBoards(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.boards.List(ctx)
			if err != nil {
				return nil, dom.NewStorageError("list boards", err)
			}
			_ = s.cache.SetBoards(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Board), nil
	}
	list, err := s.boards.List(ctx)
	if err != nil {
		return nil, dom.NewStorageError("list boards", err)
	}
	return list, nil
}

// Update renames a board.
func (s *BoardService) Update(ctx context.Context, id string, name *string) (dom.Board, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return dom.Board{}, err
	}
	patch := existing
	if name != nil {
		if err := dom.ValidateBoardName(*name); err != nil {
			return dom.Board{}, err
		}
		patch.Name = strings.TrimSpace(*name)
	}
	patch.UpdatedAt = time.Now().UTC()

	out, err := s.boards.Update(ctx, id, patch)
	if err != nil {
		return dom.Board{}, storeErr("Board", id, "update board", err)
	}
	s.invalidate(ctx)
	return out, nil
}

// Delete removes a board and everything beneath it. The last remaining board
// cannot be deleted.
func (s *BoardService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	n, err := s.boards.Count(ctx)
	if err != nil {
		return dom.NewStorageError("count boards", err)
	}
	if n == 1 {
		return dom.NewBusinessRuleError("cannot delete the last remaining board")
	}
	if err := s.boards.Delete(ctx, id); err != nil {
		return storeErr("Board", id, "delete board", err)
	}
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
	return nil
}

func (s *BoardService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateBoards(ctx)
	}
}
