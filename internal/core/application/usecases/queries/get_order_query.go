// Package queries contains read-only operations over the order store.
// Queries never mutate state; they serve the HTTP lookup surface and the
// periodic status report job.
package queries

import (
	"encoding/json"
	"errors"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full current record of one order.
//
// Example:
//
//	id, err := kernel.UUIDFromString(rawID)
//	if err != nil {
//	    // unknown identifier, treat as not found
//	}
//	query, _ := NewGetOrderQuery(id)
//	record, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order record as exposed to callers.
// TrackingID and LastError are nil until a dispatch attempt has produced them.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	Customer   json.RawMessage
	Items      json.RawMessage
	Status     order.Status
	TrackingID *string
	LastError  *string
}
