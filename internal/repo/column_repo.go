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

// ColumnRepo is the column slice of the entity store. Mutations that carry
// sibling position shifts apply them atomically with the primary write.
type ColumnRepo interface {
	Create(ctx context.Context, c dom.Column, shifts []position.Update) (dom.Column, error)
	GetByID(ctx context.Context, id string) (dom.Column, error)
	ListByBoard(ctx context.Context, boardID string) ([]dom.Column, error)
	Update(ctx context.Context, id string, patch dom.Column) (dom.Column, error)
	// Delete removes the column and its tasks via cascade; shifts close the
	// position gap among the remaining siblings.
	Delete(ctx context.Context, id string, shifts []position.Update) error
}

type PGColumnRepo struct {
	db *pgxpool.Pool
}

func NewPGColumnRepo(db *pgxpool.Pool) *PGColumnRepo {
	return &PGColumnRepo{db: db}
}

func (r *PGColumnRepo) Create(ctx context.Context, c dom.Column, shifts []position.Update) (dom.Column, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Column{}, err
	}
	defer tx.Rollback(ctx)

	if err := shiftColumns(ctx, tx, shifts); err != nil {
		return dom.Column{}, err
	}

	query := `
		INSERT INTO columns (id, board_id, name, color, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, board_id, name, color, position, created_at, updated_at`
	var out dom.Column
	err = tx.QueryRow(ctx, query, c.ID, c.BoardID, c.Name, c.Color, c.Position, c.CreatedAt, c.UpdatedAt).Scan(
		&out.ID, &out.BoardID, &out.Name, &out.Color, &out.Position, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return dom.Column{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return dom.Column{}, classifyReindexErr(err)
	}
	return out, nil
}

func (r *PGColumnRepo) GetByID(ctx context.Context, id string) (dom.Column, error) {
	query := `
		SELECT id, board_id, name, color, position, created_at, updated_at
		FROM columns WHERE id = $1`
	var c dom.Column
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.BoardID, &c.Name, &c.Color, &c.Position, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Column{}, ErrNotFound
	}
	return c, err
}

func (r *PGColumnRepo) ListByBoard(ctx context.Context, boardID string) ([]dom.Column, error) {
	query := `
		SELECT id, board_id, name, color, position, created_at, updated_at
		FROM columns WHERE board_id = $1 ORDER BY position`
	rows, err := r.db.Query(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Column
	for rows.Next() {
		var c dom.Column
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Name, &c.Color, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGColumnRepo) Update(ctx context.Context, id string, patch dom.Column) (dom.Column, error) {
	query := `
		UPDATE columns SET name = $2, color = $3, updated_at = $4
		WHERE id = $1
		RETURNING id, board_id, name, color, position, created_at, updated_at`
	var c dom.Column
	err := r.db.QueryRow(ctx, query, id, patch.Name, patch.Color, patch.UpdatedAt).Scan(
		&c.ID, &c.BoardID, &c.Name, &c.Color, &c.Position, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Column{}, ErrNotFound
	}
	return c, err
}

func (r *PGColumnRepo) Delete(ctx context.Context, id string, shifts []position.Update) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM columns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	if err := shiftColumns(ctx, tx, shifts); err != nil {
		return err
	}
	return classifyReindexErr(tx.Commit(ctx))
}

func shiftColumns(ctx context.Context, tx pgx.Tx, shifts []position.Update) error {
	now := time.Now().UTC()
	for _, u := range shifts {
		if _, err := tx.Exec(ctx,
			`UPDATE columns SET position = $2, updated_at = $3 WHERE id = $1`,
			u.ID, u.Pos, now); err != nil {
			return err
		}
	}
	return nil
}
