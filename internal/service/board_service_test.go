package service

import (
	"context"
	"strings"
	"testing"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardCreateSeedsDefaultColumns(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	b := mustBoard(t, env, "Platform Launch")
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Platform Launch", b.Name)

	cols, err := env.columns.ListByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, []string{"Todo", "Doing", "Done"}, columnNames(cols))
	for i, c := range cols {
		assert.Equal(t, i, c.Position)
		assert.Equal(t, DefaultColumnColor, c.Color)
		assert.Equal(t, b.ID, c.BoardID)
	}
}

func TestBoardCreateValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.boards.Create(ctx, "")
	var verr *dom.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = env.boards.Create(ctx, "   ")
	assert.ErrorAs(t, err, &verr)

	_, err = env.boards.Create(ctx, strings.Repeat("x", 101))
	assert.ErrorAs(t, err, &verr)

	b, err := env.boards.Create(ctx, strings.Repeat("x", 100))
	require.NoError(t, err)
	assert.Len(t, b.Name, 100)
}

func TestBoardCreateTrimsName(t *testing.T) {
	env := newTestEnv()
	b := mustBoard(t, env, "  Roadmap  ")
	assert.Equal(t, "Roadmap", b.Name)
}

func TestBoardUpdateRename(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b := mustBoard(t, env, "Old")

	name := "New"
	out, err := env.boards.Update(ctx, b.ID, &name)
	require.NoError(t, err)
	assert.Equal(t, "New", out.Name)

	got, err := env.boards.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
}

func TestBoardUpdateNilNameKeepsCurrent(t *testing.T) {
	env := newTestEnv()
	b := mustBoard(t, env, "Keep")

	out, err := env.boards.Update(context.Background(), b.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Keep", out.Name)
}

func TestBoardGetMissing(t *testing.T) {
	env := newTestEnv()

	_, err := env.boards.Get(context.Background(), "nope")
	var nfe *dom.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "Board", nfe.Entity)
}

func TestBoardDeleteLastRemainingRejected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b := mustBoard(t, env, "Only")

	err := env.boards.Delete(ctx, b.ID)
	var bre *dom.BusinessRuleError
	require.ErrorAs(t, err, &bre)

	_, err = env.boards.Get(ctx, b.ID)
	assert.NoError(t, err)
}

func TestBoardDeleteCascades(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b := mustBoard(t, env, "Doomed")
	mustBoard(t, env, "Survivor")

	cols, err := env.columns.ListByBoard(ctx, b.ID)
	require.NoError(t, err)
	task := mustTask(t, env, cols[0].ID, b.ID, "Task")
	sub := mustSubtask(t, env, task.ID, "Subtask")

	require.NoError(t, env.boards.Delete(ctx, b.ID))

	var nfe *dom.NotFoundError
	_, err = env.boards.Get(ctx, b.ID)
	assert.ErrorAs(t, err, &nfe)
	_, err = env.columns.Get(ctx, cols[0].ID)
	assert.ErrorAs(t, err, &nfe)
	_, err = env.tasks.Get(ctx, task.ID)
	assert.ErrorAs(t, err, &nfe)
	_, err = env.subtasks.Get(ctx, sub.ID)
	assert.ErrorAs(t, err, &nfe)
}

func TestBoardList(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	list, err := env.boards.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	mustBoard(t, env, "A")
	mustBoard(t, env, "B")

	list, err = env.boards.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
