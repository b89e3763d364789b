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

type TaskService struct {
	tasks   repo.TaskRepo
	columns repo.ColumnRepo
	cache   *cache.Cache
	sf      singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(tasks repo.TaskRepo, columns repo.ColumnRepo, c *cache.Cache) *TaskService {
	return &TaskService{tasks: tasks, columns: columns, cache: c}
}

// Create appends a task to the end of a column. The column must exist and
// belong to the given board.
func (s *TaskService) Create(ctx context.Context, columnID, boardID, title, description string) (dom.Task, error) {
	if err := dom.ValidateTaskTitle(title); err != nil {
		return dom.Task{}, err
	}
	if err := dom.ValidateTaskDescription(description); err != nil {
		return dom.Task{}, err
	}

	col, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		return dom.Task{}, storeErr("Column", columnID, "get column", err)
	}
	if col.BoardID != boardID {
		return dom.Task{}, dom.NewNotFoundError("Column", columnID)
	}

	siblings, err := s.tasks.ListByColumn(ctx, columnID)
	if err != nil {
		return dom.Task{}, dom.NewStorageError("list tasks", err)
	}

	now := time.Now().UTC()
	t := dom.Task{
		ID:          uuid.NewString(),
		ColumnID:    columnID,
		BoardID:     boardID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Position:    position.Append(len(siblings)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	out, err := s.tasks.Create(ctx, t)
	if err != nil {
		return dom.Task{}, dom.NewStorageError("create task", err)
	}
	s.invalidate(ctx, columnID)
	out.Status = dom.StatusFromColumnName(col.Name)
	return out, nil
}

// Get returns a task with its status projected from the owning column's name.
func (s *TaskService) Get(ctx context.Context, id string) (dom.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return dom.Task{}, storeErr("Task", id, "get task", err)
	}
	if col, err := s.columns.GetByID(ctx, t.ColumnID); err == nil {
		t.Status = dom.StatusFromColumnName(col.Name)
	}
	return t, nil
}

// ListByColumn returns a column's tasks ordered by position.
func (s *TaskService) ListByColumn(ctx context.Context, columnID string) ([]dom.Task, error) {
	list, err := s.listByColumn(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if col, err := s.columns.GetByID(ctx, columnID); err == nil {
		status := dom.StatusFromColumnName(col.Name)
		for i := range list {
			list[i].Status = status
		}
	}
	return list, nil
}

func (s *TaskService) listByColumn(ctx context.Context, columnID string) ([]dom.Task, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("tasks:"+columnID, func() (interface{}, error) {
			if list, err := s.cache.GetTasks(ctx, columnID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.tasks.ListByColumn(ctx, columnID)
			if err != nil {
				return nil, dom.NewStorageError("list tasks", err)
			}
			_ = s.cache.SetTasks(ctx, columnID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	list, err := s.tasks.ListByColumn(ctx, columnID)
	if err != nil {
		return nil, dom.NewStorageError("list tasks", err)
	}
	return list, nil
}

// ListByBoard returns every task of a board grouped by column, each with its
// projected status.
func (s *TaskService) ListByBoard(ctx context.Context, boardID string) ([]dom.Task, error) {
	list, err := s.tasks.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, dom.NewStorageError("list tasks", err)
	}
	cols, err := s.columns.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, dom.NewStorageError("list columns", err)
	}
	statusByColumn := make(map[string]string, len(cols))
	for _, c := range cols {
		statusByColumn[c.ID] = dom.StatusFromColumnName(c.Name)
	}
	for i := range list {
		list[i].Status = statusByColumn[list[i].ColumnID]
	}
	return list, nil
}

// Update changes a task's title and/or description. A column change is a
// move to the end of the target column and keeps the denormalized board
// reference in step.
func (s *TaskService) Update(ctx context.Context, id string, title, description, columnID *string) (dom.Task, error) {
	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return dom.Task{}, storeErr("Task", id, "get task", err)
	}

	patch := existing
	if title != nil {
		if err := dom.ValidateTaskTitle(*title); err != nil {
			return dom.Task{}, err
		}
		patch.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		if err := dom.ValidateTaskDescription(*description); err != nil {
			return dom.Task{}, err
		}
		patch.Description = strings.TrimSpace(*description)
	}
	patch.UpdatedAt = time.Now().UTC()

	// Resolve the target column up front so a bad column change fails before
	// any field write is committed.
	moving := columnID != nil && *columnID != existing.ColumnID
	var targetLen int
	if moving {
		if _, err := s.columns.GetByID(ctx, *columnID); err != nil {
			return dom.Task{}, storeErr("Column", *columnID, "get column", err)
		}
		target, err := s.tasks.ListByColumn(ctx, *columnID)
		if err != nil {
			return dom.Task{}, dom.NewStorageError("list tasks", err)
		}
		targetLen = len(target)
	}

	out, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		return dom.Task{}, storeErr("Task", id, "update task", err)
	}
	s.invalidate(ctx, existing.ColumnID)

	if moving {
		return s.Move(ctx, id, *columnID, targetLen)
	}

	if col, err := s.columns.GetByID(ctx, out.ColumnID); err == nil {
		out.Status = dom.StatusFromColumnName(col.Name)
	}
	return out, nil
}

// Move relocates a task to newPos in the target column. Within one column the
// siblings between the old and new position shift by one; across columns the
// source list closes its gap and the target list opens a slot, all applied as
// one atomic store operation. newPos past the end of the destination appends.
func (s *TaskService) Move(ctx context.Context, taskID, targetColumnID string, newPos int) (dom.Task, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return dom.Task{}, storeErr("Task", taskID, "get task", err)
	}
	col, err := s.columns.GetByID(ctx, targetColumnID)
	if err != nil {
		return dom.Task{}, storeErr("Column", targetColumnID, "get column", err)
	}

	if t.ColumnID == targetColumnID {
		siblings, err := s.tasks.ListByColumn(ctx, t.ColumnID)
		if err != nil {
			return dom.Task{}, dom.NewStorageError("list tasks", err)
		}
		updates, finalPos := position.Move(taskItems(siblings), taskID, newPos)
		if len(updates) == 0 {
			t.Status = dom.StatusFromColumnName(col.Name)
			return t, nil
		}
		shifts := make([]position.Update, 0, len(updates)-1)
		for _, u := range updates {
			if u.ID != taskID {
				shifts = append(shifts, u)
			}
		}
		moved, err := s.tasks.Move(ctx, taskID, t.ColumnID, t.BoardID, finalPos, shifts)
		if err != nil {
			return dom.Task{}, storeErr("Task", taskID, "move task", err)
		}
		s.invalidate(ctx, t.ColumnID)
		moved.Status = dom.StatusFromColumnName(col.Name)
		return moved, nil
	}

	source, err := s.tasks.ListByColumn(ctx, t.ColumnID)
	if err != nil {
		return dom.Task{}, dom.NewStorageError("list tasks", err)
	}
	target, err := s.tasks.ListByColumn(ctx, targetColumnID)
	if err != nil {
		return dom.Task{}, dom.NewStorageError("list tasks", err)
	}

	sourceShifts, targetShifts, finalPos := position.Transfer(
		taskItems(source), taskItems(target), taskID, newPos)
	shifts := append(sourceShifts, targetShifts...)

	moved, err := s.tasks.Move(ctx, taskID, targetColumnID, col.BoardID, finalPos, shifts)
	if err != nil {
		return dom.Task{}, storeErr("Task", taskID, "move task", err)
	}
	s.invalidate(ctx, t.ColumnID, targetColumnID)
	moved.Status = dom.StatusFromColumnName(col.Name)
	return moved, nil
}

// Delete removes a task and its subtasks, closing the position gap in its
// column.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return storeErr("Task", id, "get task", err)
	}
	siblings, err := s.tasks.ListByColumn(ctx, t.ColumnID)
	if err != nil {
		return dom.NewStorageError("list tasks", err)
	}
	shifts := position.Remove(taskItems(siblings), t.Position)
	if err := s.tasks.Delete(ctx, id, shifts); err != nil {
		return storeErr("Task", id, "delete task", err)
	}
	if s.cache != nil {
		_ = s.cache.InvalidateTasks(ctx, t.ColumnID)
		_ = s.cache.InvalidateSubtasks(ctx, id)
	}
	return nil
}

func (s *TaskService) invalidate(ctx context.Context, columnIDs ...string) {
	if s.cache != nil {
		_ = s.cache.InvalidateTasks(ctx, columnIDs...)
	}
}
