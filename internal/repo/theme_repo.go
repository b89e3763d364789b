package repo

import (
	"context"
	"errors"
	"time"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ThemeRepo stores the singleton theme preference.
type ThemeRepo interface {
	Get(ctx context.Context) (dom.ThemePreference, error)
	Set(ctx context.Context, theme string, now time.Time) (dom.ThemePreference, error)
}

// The singleton row key, matching the original schema default.
const themeRowID = "default"

type PGThemeRepo struct {
	db *pgxpool.Pool
}

func NewPGThemeRepo(db *pgxpool.Pool) *PGThemeRepo {
	return &PGThemeRepo{db: db}
}

func (r *PGThemeRepo) Get(ctx context.Context) (dom.ThemePreference, error) {
	query := `SELECT theme, updated_at FROM theme_preferences WHERE id = $1`
	var p dom.ThemePreference
	err := r.db.QueryRow(ctx, query, themeRowID).Scan(&p.Theme, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.ThemePreference{}, ErrNotFound
	}
	return p, err
}

func (r *PGThemeRepo) Set(ctx context.Context, theme string, now time.Time) (dom.ThemePreference, error) {
	query := `
		INSERT INTO theme_preferences (id, theme, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = EXCLUDED.updated_at
		RETURNING theme, updated_at`
	var p dom.ThemePreference
	err := r.db.QueryRow(ctx, query, themeRowID, theme, now).Scan(&p.Theme, &p.UpdatedAt)
	return p, err
}
