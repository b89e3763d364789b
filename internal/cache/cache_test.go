package cache

import (
	"context"
	"testing"
	"time"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client, time.Minute), mr
}

func TestBoardsRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	got, err := c.GetBoards(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "miss must return nil, not an empty list")

	want := []dom.Board{{ID: "b1", Name: "Platform Launch"}}
	require.NoError(t, c.SetBoards(ctx, want))

	got, err = c.GetBoards(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "Platform Launch", got[0].Name)

	ttl := mr.TTL("kanban:boards")
	assert.True(t, ttl > 0 && ttl <= time.Minute, "unexpected TTL %v", ttl)
}

func TestScopedKeysAreIndependent(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetTasks(ctx, "col-1", []dom.Task{{ID: "t1"}}))
	require.NoError(t, c.SetTasks(ctx, "col-2", []dom.Task{{ID: "t2"}}))

	got, err := c.GetTasks(ctx, "col-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)

	require.NoError(t, c.InvalidateTasks(ctx, "col-1"))

	got, err = c.GetTasks(ctx, "col-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = c.GetTasks(ctx, "col-2")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestInvalidateAll(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetBoards(ctx, []dom.Board{{ID: "b1"}}))
	require.NoError(t, c.SetColumns(ctx, "b1", []dom.Column{{ID: "c1"}}))
	require.NoError(t, c.SetTasks(ctx, "c1", []dom.Task{{ID: "t1"}}))
	require.NoError(t, c.SetSubtasks(ctx, "t1", []dom.Subtask{{ID: "s1"}}))
	require.NoError(t, mr.Set("other:key", "untouched"))

	require.NoError(t, c.InvalidateAll(ctx))

	boards, err := c.GetBoards(ctx)
	require.NoError(t, err)
	assert.Nil(t, boards)
	cols, err := c.GetColumns(ctx, "b1")
	require.NoError(t, err)
	assert.Nil(t, cols)
	assert.True(t, mr.Exists("other:key"), "non-kanban keys must survive")
}

func TestSubtasksRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	want := []dom.Subtask{{ID: "s1", TaskID: "t1", Title: "Check", IsCompleted: true, Position: 0}}
	require.NoError(t, c.SetSubtasks(ctx, "t1", want))

	got, err := c.GetSubtasks(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsCompleted)

	require.NoError(t, c.InvalidateSubtasks(ctx, "t1"))
	got, err = c.GetSubtasks(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
