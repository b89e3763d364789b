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

// TaskRepo is the task slice of the entity store. Tasks are always created at
// the end of their column, so Create carries no shifts; Delete and Move do.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, id string) (dom.Task, error)
	ListByColumn(ctx context.Context, columnID string) ([]dom.Task, error)
	ListByBoard(ctx context.Context, boardID string) ([]dom.Task, error)
	Update(ctx context.Context, id string, patch dom.Task) (dom.Task, error)
	Delete(ctx context.Context, id string, shifts []position.Update) error
	// Move relocates the task to targetColumnID at pos, applying all sibling
	// shifts (source and target lists) in the same transaction. targetBoardID
	// keeps the denormalized board reference in step with the new column.
	Move(ctx context.Context, id, targetColumnID, targetBoardID string, pos int, shifts []position.Update) (dom.Task, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (id, column_id, board_id, title, description, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, column_id, board_id, title, description, position, created_at, updated_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query,
		t.ID, t.ColumnID, t.BoardID, t.Title, t.Description, t.Position, t.CreatedAt, t.UpdatedAt,
	).Scan(
		&out.ID, &out.ColumnID, &out.BoardID, &out.Title, &out.Description,
		&out.Position, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id string) (dom.Task, error) {
	query := `
		SELECT id, column_id, board_id, title, description, position, created_at, updated_at
		FROM tasks WHERE id = $1`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ColumnID, &t.BoardID, &t.Title, &t.Description,
		&t.Position, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Task{}, ErrNotFound
	}
	return t, err
}

func (r *PGTaskRepo) ListByColumn(ctx context.Context, columnID string) ([]dom.Task, error) {
	query := `
		SELECT id, column_id, board_id, title, description, position, created_at, updated_at
		FROM tasks WHERE column_id = $1 ORDER BY position`
	return r.queryTasks(ctx, query, columnID)
}

func (r *PGTaskRepo) ListByBoard(ctx context.Context, boardID string) ([]dom.Task, error) {
	query := `
		SELECT id, column_id, board_id, title, description, position, created_at, updated_at
		FROM tasks WHERE board_id = $1 ORDER BY column_id, position`
	return r.queryTasks(ctx, query, boardID)
}

func (r *PGTaskRepo) queryTasks(ctx context.Context, query string, arg any) ([]dom.Task, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.ColumnID, &t.BoardID, &t.Title, &t.Description,
			&t.Position, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, id string, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
		RETURNING id, column_id, board_id, title, description, position, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, patch.Title, patch.Description, patch.UpdatedAt).Scan(
		&t.ID, &t.ColumnID, &t.BoardID, &t.Title, &t.Description,
		&t.Position, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Task{}, ErrNotFound
	}
	return t, err
}

func (r *PGTaskRepo) Delete(ctx context.Context, id string, shifts []position.Update) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	if err := shiftTasks(ctx, tx, shifts); err != nil {
		return err
	}
	return classifyReindexErr(tx.Commit(ctx))
}

func (r *PGTaskRepo) Move(ctx context.Context, id, targetColumnID, targetBoardID string, pos int, shifts []position.Update) (dom.Task, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Task{}, err
	}
	defer tx.Rollback(ctx)

	if err := shiftTasks(ctx, tx, shifts); err != nil {
		return dom.Task{}, err
	}

	query := `
		UPDATE tasks SET column_id = $2, board_id = $3, position = $4, updated_at = $5
		WHERE id = $1
		RETURNING id, column_id, board_id, title, description, position, created_at, updated_at`
	var t dom.Task
	err = tx.QueryRow(ctx, query, id, targetColumnID, targetBoardID, pos, time.Now().UTC()).Scan(
		&t.ID, &t.ColumnID, &t.BoardID, &t.Title, &t.Description,
		&t.Position, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Task{}, ErrNotFound
	}
	if err != nil {
		return dom.Task{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return dom.Task{}, classifyReindexErr(err)
	}
	return t, nil
}

func shiftTasks(ctx context.Context, tx pgx.Tx, shifts []position.Update) error {
	now := time.Now().UTC()
	for _, u := range shifts {
		if _, err := tx.Exec(ctx,
			`UPDATE tasks SET position = $2, updated_at = $3 WHERE id = $1`,
			u.ID, u.Pos, now); err != nil {
			return err
		}
	}
	return nil
}
