package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Length limits count characters, not bytes, so multibyte names at the limit
// must pass.
func TestValidateLengthsCountRunes(t *testing.T) {
	assert.NoError(t, ValidateBoardName(strings.Repeat("ü", MaxBoardNameLen)))
	assert.Error(t, ValidateBoardName(strings.Repeat("ü", MaxBoardNameLen+1)))

	assert.NoError(t, ValidateColumnName(strings.Repeat("日", MaxColumnNameLen)))
	assert.Error(t, ValidateColumnName(strings.Repeat("日", MaxColumnNameLen+1)))

	assert.NoError(t, ValidateTaskTitle(strings.Repeat("é", MaxTaskTitleLen)))
	assert.Error(t, ValidateTaskTitle(strings.Repeat("é", MaxTaskTitleLen+1)))

	assert.NoError(t, ValidateTaskDescription(strings.Repeat("ö", MaxTaskDescriptionLen)))
	assert.Error(t, ValidateTaskDescription(strings.Repeat("ö", MaxTaskDescriptionLen+1)))

	assert.NoError(t, ValidateSubtaskTitle(strings.Repeat("å", MaxSubtaskTitleLen)))
	assert.Error(t, ValidateSubtaskTitle(strings.Repeat("å", MaxSubtaskTitleLen+1)))
}

func TestValidateRequiresNonBlank(t *testing.T) {
	var verr *ValidationError
	require.ErrorAs(t, ValidateBoardName("  "), &verr)
	assert.Equal(t, "name", verr.Field)
	require.ErrorAs(t, ValidateTaskTitle(""), &verr)
	assert.Equal(t, "title", verr.Field)
}
