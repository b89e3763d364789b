package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyBoards        = "kanban:boards"
	keyColumnsPrefix = "kanban:columns:"  // + boardID
	keyTasksPrefix   = "kanban:tasks:"    // + columnID
	keySubtaskPrefix = "kanban:subtasks:" // + taskID
	keyPattern       = "kanban:*"
)

// Cache holds list reads in Redis, keyed by parent scope. Writes invalidate
// the scopes they touch; cascade deletes flush everything, since the set of
// affected child scopes is not known without re-reading the tree.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Cache with the given TTL.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetBoards returns the cached board list or nil on miss.
func (c *Cache) GetBoards(ctx context.Context) ([]dom.Board, error) {
	return getList[dom.Board](ctx, c, keyBoards)
}

// SetBoards stores the board list.
func (c *Cache) SetBoards(ctx context.Context, list []dom.Board) error {
	return c.setList(ctx, keyBoards, list)
}

// GetColumns returns the cached column list for a board or nil on miss.
func (c *Cache) GetColumns(ctx context.Context, boardID string) ([]dom.Column, error) {
	return getList[dom.Column](ctx, c, keyColumnsPrefix+boardID)
}

// SetColumns stores a board's column list.
func (c *Cache) SetColumns(ctx context.Context, boardID string, list []dom.Column) error {
	return c.setList(ctx, keyColumnsPrefix+boardID, list)
}

// GetTasks returns the cached task list for a column or nil on miss.
func (c *Cache) GetTasks(ctx context.Context, columnID string) ([]dom.Task, error) {
	return getList[dom.Task](ctx, c, keyTasksPrefix+columnID)
}

// SetTasks stores a column's task list.
func (c *Cache) SetTasks(ctx context.Context, columnID string, list []dom.Task) error {
	return c.setList(ctx, keyTasksPrefix+columnID, list)
}

// GetSubtasks returns the cached subtask list for a task or nil on miss.
func (c *Cache) GetSubtasks(ctx context.Context, taskID string) ([]dom.Subtask, error) {
	return getList[dom.Subtask](ctx, c, keySubtaskPrefix+taskID)
}

// SetSubtasks stores a task's subtask list.
func (c *Cache) SetSubtasks(ctx context.Context, taskID string, list []dom.Subtask) error {
	return c.setList(ctx, keySubtaskPrefix+taskID, list)
}

// InvalidateBoards drops the board list.
func (c *Cache) InvalidateBoards(ctx context.Context) error {
	return c.rdb.Del(ctx, keyBoards).Err()
}

// InvalidateColumns drops a board's column list.
func (c *Cache) InvalidateColumns(ctx context.Context, boardID string) error {
	return c.rdb.Del(ctx, keyColumnsPrefix+boardID).Err()
}

// InvalidateTasks drops the task lists for the given columns.
func (c *Cache) InvalidateTasks(ctx context.Context, columnIDs ...string) error {
	keys := make([]string, len(columnIDs))
	for i, id := range columnIDs {
		keys[i] = keyTasksPrefix + id
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// InvalidateSubtasks drops a task's subtask list.
func (c *Cache) InvalidateSubtasks(ctx context.Context, taskID string) error {
	return c.rdb.Del(ctx, keySubtaskPrefix+taskID).Err()
}

// InvalidateAll removes every kanban key. Used after cascade deletes.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func getList[T any](ctx context.Context, c *Cache, key string) ([]T, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []T
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Cache) setList(ctx context.Context, key string, list any) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
