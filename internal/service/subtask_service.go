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

type SubtaskService struct {
	subtasks repo.SubtaskRepo
	tasks    repo.TaskRepo
	cache    *cache.Cache
	sf       singleflight.Group
}

// NewSubtaskService creates a SubtaskService. If c is nil, caching is disabled.
func NewSubtaskService(subtasks repo.SubtaskRepo, tasks repo.TaskRepo, c *cache.Cache) *SubtaskService {
	return &SubtaskService{subtasks: subtasks, tasks: tasks, cache: c}
}

// Create appends a subtask to the end of a task's list.
func (s *SubtaskService) Create(ctx context.Context, taskID, title string) (dom.Subtask, error) {
	if err := dom.ValidateSubtaskTitle(title); err != nil {
		return dom.Subtask{}, err
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return dom.Subtask{}, storeErr("Task", taskID, "get task", err)
	}

	siblings, err := s.subtasks.ListByTask(ctx, taskID)
	if err != nil {
		return dom.Subtask{}, dom.NewStorageError("list subtasks", err)
	}

	now := time.Now().UTC()
	sub := dom.Subtask{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Title:     strings.TrimSpace(title),
		Position:  position.Append(len(siblings)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	out, err := s.subtasks.Create(ctx, sub)
	if err != nil {
		return dom.Subtask{}, dom.NewStorageError("create subtask", err)
	}
	s.invalidate(ctx, taskID)
	return out, nil
}

func (s *SubtaskService) Get(ctx context.Context, id string) (dom.Subtask, error) {
	sub, err := s.subtasks.GetByID(ctx, id)
	if err != nil {
		return dom.Subtask{}, storeErr("Subtask", id, "get subtask", err)
	}
	return sub, nil
}

// ListByTask returns a task's subtasks ordered by position.
func (s *SubtaskService) ListByTask(ctx context.Context, taskID string) ([]dom.Subtask, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("subtasks:"+taskID, func() (interface{}, error) {
			if list, err := s.cache.GetSubtasks(ctx, taskID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.subtasks.ListByTask(ctx, taskID)
			if err != nil {
				return nil, dom.NewStorageError("list subtasks", err)
			}
			_ = s.cache.SetSubtasks(ctx, taskID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Subtask), nil
	}
	list, err := s.subtasks.ListByTask(ctx, taskID)
	if err != nil {
		return nil, dom.NewStorageError("list subtasks", err)
	}
	return list, nil
}

// Update changes a subtask's title and/or completion flag.
func (s *SubtaskService) Update(ctx context.Context, id string, title *string, isCompleted *bool) (dom.Subtask, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return dom.Subtask{}, err
	}
	patch := existing
	if title != nil {
		if err := dom.ValidateSubtaskTitle(*title); err != nil {
			return dom.Subtask{}, err
		}
		patch.Title = strings.TrimSpace(*title)
	}
	if isCompleted != nil {
		patch.IsCompleted = *isCompleted
	}
	patch.UpdatedAt = time.Now().UTC()

	out, err := s.subtasks.Update(ctx, id, patch)
	if err != nil {
		return dom.Subtask{}, storeErr("Subtask", id, "update subtask", err)
	}
	s.invalidate(ctx, existing.TaskID)
	return out, nil
}

// Toggle flips a subtask's completion flag.
func (s *SubtaskService) Toggle(ctx context.Context, id string) (dom.Subtask, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return dom.Subtask{}, err
	}
	flipped := !existing.IsCompleted
	return s.Update(ctx, id, nil, &flipped)
}

// Delete removes a subtask and closes the position gap among its siblings.
func (s *SubtaskService) Delete(ctx context.Context, id string) error {
	sub, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	siblings, err := s.subtasks.ListByTask(ctx, sub.TaskID)
	if err != nil {
		return dom.NewStorageError("list subtasks", err)
	}
	shifts := position.Remove(subtaskItems(siblings), sub.Position)
	if err := s.subtasks.Delete(ctx, id, shifts); err != nil {
		return storeErr("Subtask", id, "delete subtask", err)
	}
	s.invalidate(ctx, sub.TaskID)
	return nil
}

func (s *SubtaskService) invalidate(ctx context.Context, taskID string) {
	if s.cache != nil {
		_ = s.cache.InvalidateSubtasks(ctx, taskID)
	}
}
