package commands

import (
	"encoding/json"
	"errors"

	"orderagent/internal/pkg/errs"
	"orderagent/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to accept a new order submission.
// Carries the caller-supplied customer and items payloads, both opaque JSON.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerJSON, itemsJSON)
//	if err != nil {
//	    return fmt.Errorf("invalid order payload: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(store, scheduler)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer json.RawMessage
	items    json.RawMessage

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to accept a new order.
// Both customer and items must be present; a missing or JSON-null payload
// fails with a ValueIsRequiredError, which the HTTP adapter maps to 400.
func NewCreateOrderCommand(customer, items json.RawMessage) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomer(customer),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the opaque customer payload.
func (c CreateOrderCommand) Customer() json.RawMessage {
	return c.customer
}

// Items returns the opaque items payload.
func (c CreateOrderCommand) Items() json.RawMessage {
	return c.items
}

func (c *CreateOrderCommand) setCustomer(customer json.RawMessage) error {
	if len(customer) == 0 || string(customer) == "null" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items json.RawMessage) error {
	if len(items) == 0 || string(items) == "null" {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
