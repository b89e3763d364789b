package repo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyReindexErr(t *testing.T) {
	assert.NoError(t, classifyReindexErr(nil))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, classifyReindexErr(plain))

	var pgErr error = &pgconn.PgError{Code: "23505", ConstraintName: "tasks_column_position_key"}
	got := classifyReindexErr(pgErr)
	assert.ErrorContains(t, got, "duplicate position")
	assert.ErrorIs(t, got, pgErr)

	var fkErr error = &pgconn.PgError{Code: "23503"}
	assert.Equal(t, fkErr, classifyReindexErr(fkErr))
}
