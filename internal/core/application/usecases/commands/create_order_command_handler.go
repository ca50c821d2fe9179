package commands

import (
	"context"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Persists the new order in status "new" and schedules a background dispatch
// attempt. The caller is acknowledged before the dispatch attempt runs.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(store, scheduler)
//	cmd, _ := NewCreateOrderCommand(customerJSON, itemsJSON)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
//	// The order is durable; delivery outcome becomes visible via lookup.
type CreateOrderCommandHandler struct {
	store     ports.OrderStore
	scheduler ports.DispatchScheduler
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// Requires the order store for persistence and the dispatch scheduler for
// queueing the forwarding attempt.
func NewCreateOrderCommandHandler(
	store ports.OrderStore,
	scheduler ports.DispatchScheduler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		store:     store,
		scheduler: scheduler,
	}
}

// Handle processes the intake command.
// Generates a fresh order identifier, persists the record with status "new",
// then queues a dispatch attempt. Returns the generated identifier.
// The store write is synchronous; if it fails the order was never accepted
// and no dispatch is scheduled.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), cmd.Customer(), cmd.Items())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.store.Put(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = h.scheduler.Schedule(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
