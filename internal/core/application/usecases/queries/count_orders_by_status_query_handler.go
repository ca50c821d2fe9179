package queries

import (
	"context"

	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/core/ports"
)

// CountOrdersByStatusQueryHandler aggregates order counts per status.
type CountOrdersByStatusQueryHandler struct {
	store ports.OrderStore
}

// NewCountOrdersByStatusQueryHandler creates a handler for status counts.
func NewCountOrdersByStatusQueryHandler(store ports.OrderStore) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{store: store}
}

// Handle executes the count query against the order store.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[order.Status]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.store.CountByStatus(ctx)
}
