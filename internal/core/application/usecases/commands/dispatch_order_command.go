package commands

import (
	"errors"

	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/pkg/errs"
	"orderagent/internal/pkg/guard"
)

var (
	ErrDispatchOrderCommandIsNotConstructed = errors.New(
		"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
	)
)

// DispatchOrderCommand represents one forwarding attempt for an order.
// It carries the order snapshot taken at scheduling time, including the
// dispatch sequence the attempt's outcome is fenced on.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	order *order.Order

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command for one dispatch attempt.
// The order must be properly constructed and in a dispatchable status
// (new or retrying).
func NewDispatchOrderCommand(aggregate *order.Order) (DispatchOrderCommand, error) {
	if err := aggregate.Validate(); err != nil {
		return DispatchOrderCommand{}, err
	}

	if !aggregate.Status().IsDispatchable() {
		return DispatchOrderCommand{}, errs.NewValueIsInvalidError(
			"order status must be new or retrying to dispatch",
		)
	}

	return DispatchOrderCommand{
		order: aggregate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrderCommandIsNotConstructed if validation fails.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// Order returns the order snapshot this attempt was scheduled with.
func (c DispatchOrderCommand) Order() *order.Order {
	return c.order
}
