package queries

import (
	"context"

	"orderagent/internal/core/ports"
)

// GetOrderQueryHandler serves order lookups from the order store.
// The lookup is how callers observe dispatch outcomes: delivery success or
// failure is never reported synchronously, only recorded on the record.
type GetOrderQueryHandler struct {
	store ports.OrderStore
}

// NewGetOrderQueryHandler creates a handler for order lookups.
func NewGetOrderQueryHandler(store ports.OrderStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{store: store}
}

// Handle executes the lookup.
// Returns an error satisfying errors.Is(err, errs.ErrObjectNotFound) when the
// identifier is unknown.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.store.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:         aggregate.ID(),
		Customer:   aggregate.Customer(),
		Items:      aggregate.Items(),
		Status:     aggregate.Status(),
		TrackingID: aggregate.TrackingID(),
		LastError:  aggregate.LastError(),
	}, nil
}
