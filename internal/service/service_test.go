package service

import (
	"context"
	"testing"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/repo"

	"github.com/stretchr/testify/require"
)

// testEnv wires every service over one in-memory store with caching off.
type testEnv struct {
	boards   *BoardService
	columns  *ColumnService
	tasks    *TaskService
	subtasks *SubtaskService
	themes   *ThemeService
}

func newTestEnv() *testEnv {
	mem := repo.NewMemoryStore()
	return &testEnv{
		boards:   NewBoardService(mem, nil),
		columns:  NewColumnService(mem.ColumnRepo(), mem, nil),
		tasks:    NewTaskService(mem.TaskRepo(), mem.ColumnRepo(), nil),
		subtasks: NewSubtaskService(mem.SubtaskRepo(), mem.TaskRepo(), nil),
		themes:   NewThemeService(mem),
	}
}

func mustBoard(t *testing.T, env *testEnv, name string) dom.Board {
	t.Helper()
	b, err := env.boards.Create(context.Background(), name)
	require.NoError(t, err)
	return b
}

func mustColumn(t *testing.T, env *testEnv, boardID, name string) dom.Column {
	t.Helper()
	c, err := env.columns.Create(context.Background(), boardID, name, "", nil)
	require.NoError(t, err)
	return c
}

func mustTask(t *testing.T, env *testEnv, columnID, boardID, title string) dom.Task {
	t.Helper()
	task, err := env.tasks.Create(context.Background(), columnID, boardID, title, "")
	require.NoError(t, err)
	return task
}

func mustSubtask(t *testing.T, env *testEnv, taskID, title string) dom.Subtask {
	t.Helper()
	sub, err := env.subtasks.Create(context.Background(), taskID, title)
	require.NoError(t, err)
	return sub
}

func columnNames(list []dom.Column) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}

func taskTitles(list []dom.Task) []string {
	out := make([]string, len(list))
	for i, task := range list {
		out[i] = task.Title
	}
	return out
}
