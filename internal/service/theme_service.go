package service

import (
	"context"
	"errors"
	"time"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/repo"
)

// DefaultTheme is used until a preference is stored.
const DefaultTheme = dom.ThemeLight

type ThemeService struct {
	themes repo.ThemeRepo
}

func NewThemeService(themes repo.ThemeRepo) *ThemeService {
	return &ThemeService{themes: themes}
}

// Get returns the stored theme, creating the default preference on first use.
func (s *ThemeService) Get(ctx context.Context) (dom.ThemePreference, error) {
	p, err := s.themes.Get(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return s.Set(ctx, DefaultTheme)
	}
	if err != nil {
		return dom.ThemePreference{}, dom.NewStorageError("get theme", err)
	}
	return p, nil
}

// Set stores the theme preference.
func (s *ThemeService) Set(ctx context.Context, theme string) (dom.ThemePreference, error) {
	if err := dom.ValidateTheme(theme); err != nil {
		return dom.ThemePreference{}, err
	}
	p, err := s.themes.Set(ctx, theme, time.Now().UTC())
	if err != nil {
		return dom.ThemePreference{}, dom.NewStorageError("set theme", err)
	}
	return p, nil
}

// Toggle switches between light and dark.
func (s *ThemeService) Toggle(ctx context.Context) (dom.ThemePreference, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return dom.ThemePreference{}, err
	}
	next := dom.ThemeDark
	if current.Theme == dom.ThemeDark {
		next = dom.ThemeLight
	}
	return s.Set(ctx, next)
}
