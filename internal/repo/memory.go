package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/position"
)

// MemoryStore is the in-process storage adapter. It implements every entity
// repo over plain maps and performs the cascade deletes the Postgres adapter
// gets from foreign keys. Each operation runs under a single mutex hold, so a
// reindex is observed either fully applied or not at all.
type MemoryStore struct {
	mu       sync.RWMutex
	boards   map[string]dom.Board
	columns  map[string]dom.Column
	tasks    map[string]dom.Task
	subtasks map[string]dom.Subtask
	theme    *dom.ThemePreference
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		boards:   make(map[string]dom.Board),
		columns:  make(map[string]dom.Column),
		tasks:    make(map[string]dom.Task),
		subtasks: make(map[string]dom.Subtask),
	}
}

// --- BoardRepo ---

func (m *MemoryStore) Create(ctx context.Context, b dom.Board, defaultColumns []dom.Column) (dom.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boards[b.ID] = b
	for _, c := range defaultColumns {
		m.columns[c.ID] = c
	}
	return b, nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (dom.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.boards[id]
	if !ok {
		return dom.Board{}, ErrNotFound
	}
	return b, nil
}

func (m *MemoryStore) List(ctx context.Context) ([]dom.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]dom.Board, 0, len(m.boards))
	for _, b := range m.boards {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, patch dom.Board) (dom.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[id]
	if !ok {
		return dom.Board{}, ErrNotFound
	}
	b.Name = patch.Name
	b.UpdatedAt = patch.UpdatedAt
	m.boards[id] = b
	return b, nil
}

func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.boards), nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boards[id]; !ok {
		return ErrNotFound
	}
	delete(m.boards, id)
	for cid, c := range m.columns {
		if c.BoardID == id {
			delete(m.columns, cid)
		}
	}
	for tid, t := range m.tasks {
		if t.BoardID == id {
			m.deleteTaskLocked(tid)
		}
	}
	return nil
}

// --- ColumnRepo ---

func (m *MemoryStore) CreateColumn(ctx context.Context, c dom.Column, shifts []position.Update) (dom.Column, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyColumnShiftsLocked(shifts)
	m.columns[c.ID] = c
	return c, nil
}

func (m *MemoryStore) GetColumn(ctx context.Context, id string) (dom.Column, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.columns[id]
	if !ok {
		return dom.Column{}, ErrNotFound
	}
	return c, nil
}

func (m *MemoryStore) ListByBoard(ctx context.Context, boardID string) ([]dom.Column, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []dom.Column
	for _, c := range m.columns {
		if c.BoardID == boardID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Position < list[j].Position })
	return list, nil
}

func (m *MemoryStore) UpdateColumn(ctx context.Context, id string, patch dom.Column) (dom.Column, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.columns[id]
	if !ok {
		return dom.Column{}, ErrNotFound
	}
	c.Name = patch.Name
	c.Color = patch.Color
	c.UpdatedAt = patch.UpdatedAt
	m.columns[id] = c
	return c, nil
}

func (m *MemoryStore) DeleteColumn(ctx context.Context, id string, shifts []position.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.columns[id]; !ok {
		return ErrNotFound
	}
	delete(m.columns, id)
	for tid, t := range m.tasks {
		if t.ColumnID == id {
			m.deleteTaskLocked(tid)
		}
	}
	m.applyColumnShiftsLocked(shifts)
	return nil
}

// --- TaskRepo ---

func (m *MemoryStore) CreateTask(ctx context.Context, t dom.Task) (dom.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[t.ID] = t
	return t, nil
}

func (m *MemoryStore) GetTask(ctx context.Context, id string) (dom.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tasks[id]
	if !ok {
		return dom.Task{}, ErrNotFound
	}
	return t, nil
}

func (m *MemoryStore) ListByColumn(ctx context.Context, columnID string) ([]dom.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []dom.Task
	for _, t := range m.tasks {
		if t.ColumnID == columnID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Position < list[j].Position })
	return list, nil
}

func (m *MemoryStore) ListTasksByBoard(ctx context.Context, boardID string) ([]dom.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []dom.Task
	for _, t := range m.tasks {
		if t.BoardID == boardID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].ColumnID != list[j].ColumnID {
			return list[i].ColumnID < list[j].ColumnID
		}
		return list[i].Position < list[j].Position
	})
	return list, nil
}

func (m *MemoryStore) UpdateTask(ctx context.Context, id string, patch dom.Task) (dom.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return dom.Task{}, ErrNotFound
	}
	t.Title = patch.Title
	t.Description = patch.Description
	t.UpdatedAt = patch.UpdatedAt
	m.tasks[id] = t
	return t, nil
}

func (m *MemoryStore) DeleteTask(ctx context.Context, id string, shifts []position.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[id]; !ok {
		return ErrNotFound
	}
	m.deleteTaskLocked(id)
	m.applyTaskShiftsLocked(shifts)
	return nil
}

func (m *MemoryStore) MoveTask(ctx context.Context, id, targetColumnID, targetBoardID string, pos int, shifts []position.Update) (dom.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return dom.Task{}, ErrNotFound
	}
	m.applyTaskShiftsLocked(shifts)
	t.ColumnID = targetColumnID
	t.BoardID = targetBoardID
	t.Position = pos
	t.UpdatedAt = time.Now().UTC()
	m.tasks[id] = t
	return t, nil
}

// --- SubtaskRepo ---

func (m *MemoryStore) CreateSubtask(ctx context.Context, s dom.Subtask) (dom.Subtask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subtasks[s.ID] = s
	return s, nil
}

func (m *MemoryStore) GetSubtask(ctx context.Context, id string) (dom.Subtask, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.subtasks[id]
	if !ok {
		return dom.Subtask{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) ListByTask(ctx context.Context, taskID string) ([]dom.Subtask, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []dom.Subtask
	for _, s := range m.subtasks {
		if s.TaskID == taskID {
			list = append(list, s)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Position < list[j].Position })
	return list, nil
}

func (m *MemoryStore) UpdateSubtask(ctx context.Context, id string, patch dom.Subtask) (dom.Subtask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subtasks[id]
	if !ok {
		return dom.Subtask{}, ErrNotFound
	}
	s.Title = patch.Title
	s.IsCompleted = patch.IsCompleted
	s.UpdatedAt = patch.UpdatedAt
	m.subtasks[id] = s
	return s, nil
}

func (m *MemoryStore) DeleteSubtask(ctx context.Context, id string, shifts []position.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subtasks[id]; !ok {
		return ErrNotFound
	}
	delete(m.subtasks, id)
	now := time.Now().UTC()
	for _, u := range shifts {
		if s, ok := m.subtasks[u.ID]; ok {
			s.Position = u.Pos
			s.UpdatedAt = now
			m.subtasks[u.ID] = s
		}
	}
	return nil
}

// --- ThemeRepo ---

func (m *MemoryStore) Get(ctx context.Context) (dom.ThemePreference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.theme == nil {
		return dom.ThemePreference{}, ErrNotFound
	}
	return *m.theme, nil
}

func (m *MemoryStore) Set(ctx context.Context, theme string, now time.Time) (dom.ThemePreference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = &dom.ThemePreference{Theme: theme, UpdatedAt: now}
	return *m.theme, nil
}

// --- interface views ---
//
// MemoryStore itself satisfies BoardRepo and ThemeRepo; the remaining repos
// collide on method names, so they are exposed as thin views over the store.

type MemoryColumnRepo struct{ s *MemoryStore }

func (m *MemoryStore) ColumnRepo() *MemoryColumnRepo { return &MemoryColumnRepo{s: m} }

func (r *MemoryColumnRepo) Create(ctx context.Context, c dom.Column, shifts []position.Update) (dom.Column, error) {
	return r.s.CreateColumn(ctx, c, shifts)
}

func (r *MemoryColumnRepo) GetByID(ctx context.Context, id string) (dom.Column, error) {
	return r.s.GetColumn(ctx, id)
}

func (r *MemoryColumnRepo) ListByBoard(ctx context.Context, boardID string) ([]dom.Column, error) {
	return r.s.ListByBoard(ctx, boardID)
}

func (r *MemoryColumnRepo) Update(ctx context.Context, id string, patch dom.Column) (dom.Column, error) {
	return r.s.UpdateColumn(ctx, id, patch)
}

func (r *MemoryColumnRepo) Delete(ctx context.Context, id string, shifts []position.Update) error {
	return r.s.DeleteColumn(ctx, id, shifts)
}

type MemoryTaskRepo struct{ s *MemoryStore }

func (m *MemoryStore) TaskRepo() *MemoryTaskRepo { return &MemoryTaskRepo{s: m} }

func (r *MemoryTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	return r.s.CreateTask(ctx, t)
}

func (r *MemoryTaskRepo) GetByID(ctx context.Context, id string) (dom.Task, error) {
	return r.s.GetTask(ctx, id)
}

func (r *MemoryTaskRepo) ListByColumn(ctx context.Context, columnID string) ([]dom.Task, error) {
	return r.s.ListByColumn(ctx, columnID)
}

func (r *MemoryTaskRepo) ListByBoard(ctx context.Context, boardID string) ([]dom.Task, error) {
	return r.s.ListTasksByBoard(ctx, boardID)
}

func (r *MemoryTaskRepo) Update(ctx context.Context, id string, patch dom.Task) (dom.Task, error) {
	return r.s.UpdateTask(ctx, id, patch)
}

func (r *MemoryTaskRepo) Delete(ctx context.Context, id string, shifts []position.Update) error {
	return r.s.DeleteTask(ctx, id, shifts)
}

func (r *MemoryTaskRepo) Move(ctx context.Context, id, targetColumnID, targetBoardID string, pos int, shifts []position.Update) (dom.Task, error) {
	return r.s.MoveTask(ctx, id, targetColumnID, targetBoardID, pos, shifts)
}

type MemorySubtaskRepo struct{ s *MemoryStore }

func (m *MemoryStore) SubtaskRepo() *MemorySubtaskRepo { return &MemorySubtaskRepo{s: m} }

func (r *MemorySubtaskRepo) Create(ctx context.Context, s dom.Subtask) (dom.Subtask, error) {
	return r.s.CreateSubtask(ctx, s)
}

func (r *MemorySubtaskRepo) GetByID(ctx context.Context, id string) (dom.Subtask, error) {
	return r.s.GetSubtask(ctx, id)
}

func (r *MemorySubtaskRepo) ListByTask(ctx context.Context, taskID string) ([]dom.Subtask, error) {
	return r.s.ListByTask(ctx, taskID)
}

func (r *MemorySubtaskRepo) Update(ctx context.Context, id string, patch dom.Subtask) (dom.Subtask, error) {
	return r.s.UpdateSubtask(ctx, id, patch)
}

func (r *MemorySubtaskRepo) Delete(ctx context.Context, id string, shifts []position.Update) error {
	return r.s.DeleteSubtask(ctx, id, shifts)
}

// --- internals ---

func (m *MemoryStore) deleteTaskLocked(id string) {
	delete(m.tasks, id)
	for sid, s := range m.subtasks {
		if s.TaskID == id {
			delete(m.subtasks, sid)
		}
	}
}

func (m *MemoryStore) applyColumnShiftsLocked(shifts []position.Update) {
	now := time.Now().UTC()
	for _, u := range shifts {
		if c, ok := m.columns[u.ID]; ok {
			c.Position = u.Pos
			c.UpdatedAt = now
			m.columns[u.ID] = c
		}
	}
}

func (m *MemoryStore) applyTaskShiftsLocked(shifts []position.Update) {
	now := time.Now().UTC()
	for _, u := range shifts {
		if t, ok := m.tasks[u.ID]; ok {
			t.Position = u.Pos
			t.UpdatedAt = now
			m.tasks[u.ID] = t
		}
	}
}
