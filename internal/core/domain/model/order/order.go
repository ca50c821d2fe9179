package order

import (
	"encoding/json"
	"errors"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer purchase request tracked through intake and
// courier dispatch. It is the aggregate root for the order lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, immutable once assigned
//   - Customer and items payloads must be present (non-empty JSON)
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The dispatch sequence number fences concurrent dispatch attempts: every
// scheduled attempt captures the sequence it was scheduled under, and the
// store discards outcome patches whose sequence no longer matches. A resend
// bumps the sequence, so the most recently scheduled attempt wins.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the opaque customer payload supplied by the caller
	customer json.RawMessage

	// items is the opaque items payload supplied by the caller
	items json.RawMessage

	// status represents the current state in the order lifecycle
	status Status

	// trackingID is the courier-assigned tracking identifier (nil until sent)
	trackingID *string

	// lastError holds the detail of the last failed dispatch attempt
	lastError *string

	// dispatchSeq is the fencing token for dispatch attempts
	dispatchSeq int

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order on intake with validation. This is the only way
// to create an order that has not been persisted before.
//
// The order starts in status New with dispatch sequence 1. Customer and items
// must be non-empty JSON values; both are stored and forwarded verbatim.
//
// Example:
//
//	id := kernel.NewUUID()
//	o, err := order.NewOrder(id, customerJSON, itemsJSON)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, customer, items json.RawMessage) (*Order, error) {
	order := &Order{
		status:        New,
		dispatchSeq:   1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// All fields are validated the same way as in NewOrder; additionally the
// persisted status must be valid and the dispatch sequence positive.
func RestoreOrder(
	id kernel.UUID,
	customer, items json.RawMessage,
	status Status,
	trackingID *string,
	lastError *string,
	dispatchSeq int,
) (*Order, error) {
	order := &Order{
		trackingID:    trackingID,
		lastError:     lastError,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
		order.setStatus(status),
		order.setDispatchSeq(dispatchSeq),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the opaque customer payload supplied on intake.
func (o *Order) Customer() json.RawMessage {
	return o.customer
}

// Items returns the opaque items payload supplied on intake.
func (o *Order) Items() json.RawMessage {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TrackingID returns the courier tracking identifier.
// Returns nil if the order has not been accepted by the courier yet.
func (o *Order) TrackingID() *string {
	return o.trackingID
}

// LastError returns the detail of the last failed dispatch attempt.
// Returns nil if no attempt has failed since the last success.
func (o *Order) LastError() *string {
	return o.lastError
}

// DispatchSeq returns the fencing token of the most recently scheduled
// dispatch attempt.
func (o *Order) DispatchSeq() int {
	return o.dispatchSeq
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomer validates and sets the customer payload.
// The payload is opaque but must be present: an empty or JSON-null value is
// treated as a missing field.
func (o *Order) setCustomer(customer json.RawMessage) error {
	if isEmptyJSON(customer) {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

// setItems validates and sets the items payload.
func (o *Order) setItems(items json.RawMessage) error {
	if isEmptyJSON(items) {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

// setStatus validates and sets the persisted status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setDispatchSeq validates and sets the dispatch sequence number.
func (o *Order) setDispatchSeq(seq int) error {
	if seq <= 0 {
		return errs.NewValueIsInvalidError("dispatch sequence must be positive")
	}
	o.dispatchSeq = seq
	return nil
}

// isEmptyJSON reports whether a raw payload is absent for validation purposes.
// "null" counts as absent because encoding/json leaves RawMessage as the
// literal null when the field is set to JSON null.
func isEmptyJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
