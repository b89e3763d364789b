package service

import (
	"context"
	"strings"
	"testing"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWithColumns creates a board and returns it with its default columns.
func boardWithColumns(t *testing.T, env *testEnv) (dom.Board, []dom.Column) {
	t.Helper()
	b := mustBoard(t, env, "Board")
	cols, err := env.columns.ListByBoard(context.Background(), b.ID)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	return b, cols
}

func TestTaskCreateAppendsToColumn(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	t1 := mustTask(t, env, cols[0].ID, b.ID, "First")
	t2 := mustTask(t, env, cols[0].ID, b.ID, "Second")
	assert.Equal(t, 0, t1.Position)
	assert.Equal(t, 1, t2.Position)

	list, err := env.tasks.ListByColumn(ctx, cols[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second"}, taskTitles(list))
}

func TestTaskCreateColumnBoardMismatch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, cols := boardWithColumns(t, env)
	other := mustBoard(t, env, "Other")

	_, err := env.tasks.Create(ctx, cols[0].ID, other.ID, "Task", "")
	var nfe *dom.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "Column", nfe.Entity)
}

func TestTaskCreateValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	var verr *dom.ValidationError

	_, err := env.tasks.Create(ctx, cols[0].ID, b.ID, "", "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, err = env.tasks.Create(ctx, cols[0].ID, b.ID, strings.Repeat("x", 201), "")
	assert.ErrorAs(t, err, &verr)

	_, err = env.tasks.Create(ctx, cols[0].ID, b.ID, "Ok", strings.Repeat("d", 5001))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "description", verr.Field)

	task, err := env.tasks.Create(ctx, cols[0].ID, b.ID, strings.Repeat("x", 200), strings.Repeat("d", 5000))
	require.NoError(t, err)
	assert.Len(t, task.Title, 200)
}

func TestTaskStatusProjection(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	task := mustTask(t, env, cols[0].ID, b.ID, "Task")
	assert.Equal(t, "todo", task.Status)

	moved, err := env.tasks.Move(ctx, task.ID, cols[1].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "doing", moved.Status)

	// A column whose name is not a status leaves the task without one.
	backlog := mustColumn(t, env, b.ID, "Backlog")
	moved, err = env.tasks.Move(ctx, task.ID, backlog.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, moved.Status)

	// Status follows the name case-insensitively.
	name := "DONE"
	_, err = env.columns.Update(ctx, cols[2].ID, &name, nil)
	require.NoError(t, err)
	moved, err = env.tasks.Move(ctx, task.ID, cols[2].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "done", moved.Status)
}

func TestTaskMoveWithinColumn(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	var ids []string
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		ids = append(ids, mustTask(t, env, cols[0].ID, b.ID, title).ID)
	}

	moved, err := env.tasks.Move(ctx, ids[1], cols[0].ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, moved.Position)

	list, err := env.tasks.ListByColumn(ctx, cols[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "B", "E"}, taskTitles(list))

	moved, err = env.tasks.Move(ctx, ids[3], cols[0].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Position)

	list, err = env.tasks.ListByColumn(ctx, cols[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "A", "C", "B", "E"}, taskTitles(list))
	for i, task := range list {
		assert.Equal(t, i, task.Position)
	}
}

func TestTaskMoveAcrossColumns(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	t1 := mustTask(t, env, cols[0].ID, b.ID, "T1")
	mustTask(t, env, cols[0].ID, b.ID, "T2")
	mustTask(t, env, cols[1].ID, b.ID, "T3")

	moved, err := env.tasks.Move(ctx, t1.ID, cols[1].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, cols[1].ID, moved.ColumnID)
	assert.Equal(t, 0, moved.Position)

	source, err := env.tasks.ListByColumn(ctx, cols[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"T2"}, taskTitles(source))
	assert.Equal(t, 0, source[0].Position)

	target, err := env.tasks.ListByColumn(ctx, cols[1].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T3"}, taskTitles(target))
	for i, task := range target {
		assert.Equal(t, i, task.Position)
	}
}

func TestTaskMoveClampsOverlargePosition(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	task := mustTask(t, env, cols[0].ID, b.ID, "T")
	mustTask(t, env, cols[1].ID, b.ID, "X")

	moved, err := env.tasks.Move(ctx, task.ID, cols[1].ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Position)
}

func TestTaskMoveNoop(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)
	task := mustTask(t, env, cols[0].ID, b.ID, "T")

	moved, err := env.tasks.Move(ctx, task.ID, cols[0].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Position)
	assert.Equal(t, cols[0].ID, moved.ColumnID)
}

func TestTaskMoveUnknownTargetColumn(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)
	task := mustTask(t, env, cols[0].ID, b.ID, "T")

	_, err := env.tasks.Move(ctx, task.ID, "nope", 0)
	var nfe *dom.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "Column", nfe.Entity)
}

func TestTaskUpdateFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)
	task := mustTask(t, env, cols[0].ID, b.ID, "Old")

	title, desc := "New", "details"
	out, err := env.tasks.Update(ctx, task.ID, &title, &desc, nil)
	require.NoError(t, err)
	assert.Equal(t, "New", out.Title)
	assert.Equal(t, "details", out.Description)
	assert.Equal(t, cols[0].ID, out.ColumnID)
}

func TestTaskUpdateColumnChangeMovesToEnd(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	task := mustTask(t, env, cols[0].ID, b.ID, "Mover")
	mustTask(t, env, cols[1].ID, b.ID, "Existing")

	out, err := env.tasks.Update(ctx, task.ID, nil, nil, &cols[1].ID)
	require.NoError(t, err)
	assert.Equal(t, cols[1].ID, out.ColumnID)
	assert.Equal(t, 1, out.Position)

	source, err := env.tasks.ListByColumn(ctx, cols[0].ID)
	require.NoError(t, err)
	assert.Empty(t, source)
}

func TestTaskUpdateUnknownColumnLeavesFieldsUntouched(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)
	task := mustTask(t, env, cols[0].ID, b.ID, "Original")

	title := "Changed"
	bad := "nope"
	_, err := env.tasks.Update(ctx, task.ID, &title, nil, &bad)
	var nfe *dom.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "Column", nfe.Entity)

	got, err := env.tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)
	assert.Equal(t, cols[0].ID, got.ColumnID)
}

func TestTaskListByBoard(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	mustTask(t, env, cols[0].ID, b.ID, "A")
	mustTask(t, env, cols[1].ID, b.ID, "B")

	list, err := env.tasks.ListByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, task := range list {
		assert.Contains(t, []string{"todo", "doing"}, task.Status)
	}
}

func TestTaskDeleteClosesGapAndCascades(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	b, cols := boardWithColumns(t, env)

	mustTask(t, env, cols[0].ID, b.ID, "A")
	t2 := mustTask(t, env, cols[0].ID, b.ID, "B")
	mustTask(t, env, cols[0].ID, b.ID, "C")
	sub := mustSubtask(t, env, t2.ID, "Sub")

	require.NoError(t, env.tasks.Delete(ctx, t2.ID))

	list, err := env.tasks.ListByColumn(ctx, cols[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, taskTitles(list))
	assert.Equal(t, 0, list[0].Position)
	assert.Equal(t, 1, list[1].Position)

	var nfe *dom.NotFoundError
	_, err = env.subtasks.Get(ctx, sub.ID)
	assert.ErrorAs(t, err, &nfe)
}
