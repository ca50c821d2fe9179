package queries

import (
	"errors"

	"orderagent/internal/pkg/guard"
)

var (
	ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
		"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
	)
)

// CountOrdersByStatusQuery retrieves the number of stored orders per status.
// Feeds the periodic status report job; statuses with no orders may be absent
// from the result.
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOrdersByStatusQuery creates a parameterless status count query.
func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountOrdersByStatusQueryIsNotConstructed if validation fails.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}
