package repo

import (
	"context"
	"errors"
	"time"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/position"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubtaskRepo is the subtask slice of the entity store.
type SubtaskRepo interface {
	Create(ctx context.Context, s dom.Subtask) (dom.Subtask, error)
	GetByID(ctx context.Context, id string) (dom.Subtask, error)
	ListByTask(ctx context.Context, taskID string) ([]dom.Subtask, error)
	Update(ctx context.Context, id string, patch dom.Subtask) (dom.Subtask, error)
	Delete(ctx context.Context, id string, shifts []position.Update) error
}

type PGSubtaskRepo struct {
	db *pgxpool.Pool
}

func NewPGSubtaskRepo(db *pgxpool.Pool) *PGSubtaskRepo {
	return &PGSubtaskRepo{db: db}
}

func (r *PGSubtaskRepo) Create(ctx context.Context, s dom.Subtask) (dom.Subtask, error) {
	query := `
		INSERT INTO subtasks (id, task_id, title, is_completed, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, task_id, title, is_completed, position, created_at, updated_at`
	var out dom.Subtask
	err := r.db.QueryRow(ctx, query,
		s.ID, s.TaskID, s.Title, s.IsCompleted, s.Position, s.CreatedAt, s.UpdatedAt,
	).Scan(
		&out.ID, &out.TaskID, &out.Title, &out.IsCompleted,
		&out.Position, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGSubtaskRepo) GetByID(ctx context.Context, id string) (dom.Subtask, error) {
	query := `
		SELECT id, task_id, title, is_completed, position, created_at, updated_at
		FROM subtasks WHERE id = $1`
	var s dom.Subtask
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.TaskID, &s.Title, &s.IsCompleted,
		&s.Position, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Subtask{}, ErrNotFound
	}
	return s, err
}

func (r *PGSubtaskRepo) ListByTask(ctx context.Context, taskID string) ([]dom.Subtask, error) {
	query := `
		SELECT id, task_id, title, is_completed, position, created_at, updated_at
		FROM subtasks WHERE task_id = $1 ORDER BY position`
	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Subtask
	for rows.Next() {
		var s dom.Subtask
		if err := rows.Scan(&s.ID, &s.TaskID, &s.Title, &s.IsCompleted,
			&s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *PGSubtaskRepo) Update(ctx context.Context, id string, patch dom.Subtask) (dom.Subtask, error) {
	query := `
		UPDATE subtasks SET title = $2, is_completed = $3, updated_at = $4
		WHERE id = $1
		RETURNING id, task_id, title, is_completed, position, created_at, updated_at`
	var s dom.Subtask
	err := r.db.QueryRow(ctx, query, id, patch.Title, patch.IsCompleted, patch.UpdatedAt).Scan(
		&s.ID, &s.TaskID, &s.Title, &s.IsCompleted,
		&s.Position, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Subtask{}, ErrNotFound
	}
	return s, err
}

func (r *PGSubtaskRepo) Delete(ctx context.Context, id string, shifts []position.Update) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM subtasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	now := time.Now().UTC()
	for _, u := range shifts {
		if _, err := tx.Exec(ctx,
			`UPDATE subtasks SET position = $2, updated_at = $3 WHERE id = $1`,
			u.ID, u.Pos, now); err != nil {
			return err
		}
	}
	return classifyReindexErr(tx.Commit(ctx))
}
