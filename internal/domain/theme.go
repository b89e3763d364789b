package domain

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemePreference is a singleton record holding the UI theme.
type ThemePreference struct {
	Theme     string
	UpdatedAt time.Time
}
