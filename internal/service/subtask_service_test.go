package service

import (
	"context"
	"strings"
	"testing"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskForSubtasks(t *testing.T, env *testEnv) dom.Task {
	t.Helper()
	b, cols := boardWithColumns(t, env)
	return mustTask(t, env, cols[0].ID, b.ID, "Parent")
}

func TestSubtaskCreateAppends(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	task := taskForSubtasks(t, env)

	s1 := mustSubtask(t, env, task.ID, "One")
	s2 := mustSubtask(t, env, task.ID, "Two")
	assert.Equal(t, 0, s1.Position)
	assert.Equal(t, 1, s2.Position)
	assert.False(t, s1.IsCompleted)

	list, err := env.subtasks.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "One", list[0].Title)
	assert.Equal(t, "Two", list[1].Title)
}

func TestSubtaskCreateUnknownTask(t *testing.T) {
	env := newTestEnv()

	_, err := env.subtasks.Create(context.Background(), "nope", "Sub")
	var nfe *dom.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "Task", nfe.Entity)
}

func TestSubtaskCreateValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	task := taskForSubtasks(t, env)

	var verr *dom.ValidationError

	_, err := env.subtasks.Create(ctx, task.ID, "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, err = env.subtasks.Create(ctx, task.ID, strings.Repeat("x", 201))
	assert.ErrorAs(t, err, &verr)

	sub, err := env.subtasks.Create(ctx, task.ID, strings.Repeat("x", 200))
	require.NoError(t, err)
	assert.Len(t, sub.Title, 200)
}

func TestSubtaskToggle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	task := taskForSubtasks(t, env)
	sub := mustSubtask(t, env, task.ID, "Flip me")

	out, err := env.subtasks.Toggle(ctx, sub.ID)
	require.NoError(t, err)
	assert.True(t, out.IsCompleted)

	// Toggling twice lands back where it started.
	out, err = env.subtasks.Toggle(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, out.IsCompleted)
}

func TestSubtaskUpdate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	task := taskForSubtasks(t, env)
	sub := mustSubtask(t, env, task.ID, "Old")

	title := "New"
	done := true
	out, err := env.subtasks.Update(ctx, sub.ID, &title, &done)
	require.NoError(t, err)
	assert.Equal(t, "New", out.Title)
	assert.True(t, out.IsCompleted)

	// Nil fields leave the current values alone.
	out, err = env.subtasks.Update(ctx, sub.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "New", out.Title)
	assert.True(t, out.IsCompleted)
}

func TestSubtaskDeleteClosesGap(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	task := taskForSubtasks(t, env)

	mustSubtask(t, env, task.ID, "A")
	s2 := mustSubtask(t, env, task.ID, "B")
	mustSubtask(t, env, task.ID, "C")

	require.NoError(t, env.subtasks.Delete(ctx, s2.ID))

	list, err := env.subtasks.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Title)
	assert.Equal(t, "C", list[1].Title)
	assert.Equal(t, 0, list[0].Position)
	assert.Equal(t, 1, list[1].Position)
}

func TestSubtaskDeleteMissing(t *testing.T) {
	env := newTestEnv()

	err := env.subtasks.Delete(context.Background(), "nope")
	var nfe *dom.NotFoundError
	require.ErrorAs(t, err, &nfe)
}
