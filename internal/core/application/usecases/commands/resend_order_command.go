package commands

import (
	"errors"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/pkg/guard"
)

var (
	ErrResendOrderCommandIsNotConstructed = errors.New(
		"ResendOrderCommand must be created via NewResendOrderCommand constructor",
	)
)

// ResendOrderCommand represents an operator request to re-trigger delivery of
// an existing order. Resending is the only retry mechanism: dispatch attempts
// themselves never retry.
type ResendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResendOrderCommand creates a command to resend an existing order.
// Validates that the order ID is a properly constructed UUID.
func NewResendOrderCommand(orderID kernel.UUID) (ResendOrderCommand, error) {
	resendCommand := ResendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resendCommand.setOrderID(orderID); err != nil {
		return ResendOrderCommand{}, err
	}

	return resendCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResendOrderCommandIsNotConstructed if validation fails.
func (c ResendOrderCommand) Validate() error {
	return c.guard.Validate(ErrResendOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to resend.
func (c ResendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResendOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
