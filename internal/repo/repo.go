package repo

import (
	"errors"
	"fmt"

	"github.com/RaulLuz/kanban-spec/internal/utils"
)

// ErrNotFound is returned by all adapters when a row does not exist.
// Services translate it into a domain NotFoundError with entity context.
var ErrNotFound = errors.New("row not found")

// classifyReindexErr tags unique violations from the deferred position
// constraints. Those surface at commit time and mean a reindex plan produced
// a duplicate position for one parent scope.
func classifyReindexErr(err error) error {
	if utils.IsPGUniqueViolation(err) {
		return fmt.Errorf("reindex produced a duplicate position: %w", err)
	}
	return err
}
