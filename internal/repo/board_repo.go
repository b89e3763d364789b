package repo

import (
	"context"
	"errors"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BoardRepo is the board slice of the entity store.
type BoardRepo interface {
	// Create inserts the board together with its default columns in one
	// atomic operation.
	Create(ctx context.Context, b dom.Board, defaultColumns []dom.Column) (dom.Board, error)
	GetByID(ctx context.Context, id string) (dom.Board, error)
	List(ctx context.Context) ([]dom.Board, error)
	Update(ctx context.Context, id string, patch dom.Board) (dom.Board, error)
	Count(ctx context.Context) (int, error)
	// Delete removes the board; columns, tasks and subtasks beneath it go
	// with it via cascade.
	Delete(ctx context.Context, id string) error
}

type PGBoardRepo struct {
	db *pgxpool.Pool
}

func NewPGBoardRepo(db *pgxpool.Pool) *PGBoardRepo {
	return &PGBoardRepo{db: db}
}

func (r *PGBoardRepo) Create(ctx context.Context, b dom.Board, defaultColumns []dom.Column) (dom.Board, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Board{}, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO boards (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, created_at, updated_at`
	var out dom.Board
	err = tx.QueryRow(ctx, query, b.ID, b.Name, b.CreatedAt, b.UpdatedAt).Scan(
		&out.ID, &out.Name, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return dom.Board{}, err
	}

	for _, c := range defaultColumns {
		_, err = tx.Exec(ctx, `
			INSERT INTO columns (id, board_id, name, color, position, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.ID, c.BoardID, c.Name, c.Color, c.Position, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return dom.Board{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return dom.Board{}, err
	}
	return out, nil
}

func (r *PGBoardRepo) GetByID(ctx context.Context, id string) (dom.Board, error) {
	query := `SELECT id, name, created_at, updated_at FROM boards WHERE id = $1`
	var b dom.Board
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Board{}, ErrNotFound
	}
	return b, err
}

func (r *PGBoardRepo) List(ctx context.Context) ([]dom.Board, error) {
	query := `SELECT id, name, created_at, updated_at FROM boards ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Board
	for rows.Next() {
		var b dom.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *PGBoardRepo) Update(ctx context.Context, id string, patch dom.Board) (dom.Board, error) {
	query := `
		UPDATE boards SET name = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`
	var b dom.Board
	err := r.db.QueryRow(ctx, query, id, patch.Name, patch.UpdatedAt).Scan(
		&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Board{}, ErrNotFound
	}
	return b, err
}

func (r *PGBoardRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM boards`).Scan(&n)
	return n, err
}

func (r *PGBoardRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
