package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxBoardNameLen       = 100
	MaxColumnNameLen      = 50
	MaxTaskTitleLen       = 200
	MaxTaskDescriptionLen = 5000
	MaxSubtaskTitleLen    = 200
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateBoardName checks the 1–100 character bound on a board name.
func ValidateBoardName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewValidationError("name", "board name is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxBoardNameLen {
		return NewValidationError("name", "board name must be 100 characters or less")
	}
	return nil
}

// ValidateColumnName checks the 1–50 character bound on a column name.
func ValidateColumnName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewValidationError("name", "column name is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxColumnNameLen {
		return NewValidationError("name", "column name must be 50 characters or less")
	}
	return nil
}

// ValidateColor checks for a 6-hex-digit color like #635FC7.
func ValidateColor(color string) error {
	if color == "" {
		return NewValidationError("color", "color is required")
	}
	if !hexColorPattern.MatchString(color) {
		return NewValidationError("color", "color must be a valid hex color code (e.g. #635FC7)")
	}
	return nil
}

// ValidateTaskTitle checks the 1–200 character bound on a task title.
func ValidateTaskTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return NewValidationError("title", "task title is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxTaskTitleLen {
		return NewValidationError("title", "task title must be 200 characters or less")
	}
	return nil
}

// ValidateTaskDescription checks the optional description's 5000 character cap.
func ValidateTaskDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxTaskDescriptionLen {
		return NewValidationError("description", "task description must be 5000 characters or less")
	}
	return nil
}

// ValidateSubtaskTitle checks the 1–200 character bound on a subtask title.
func ValidateSubtaskTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return NewValidationError("title", "subtask title is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxSubtaskTitleLen {
		return NewValidationError("title", "subtask title must be 200 characters or less")
	}
	return nil
}

// ValidateTheme checks that theme is one of light or dark.
func ValidateTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return NewValidationError("theme", "theme must be light or dark")
	}
	return nil
}
