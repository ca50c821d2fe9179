package commands

import (
	"context"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/core/ports"
	"orderagent/internal/pkg/errs"
)

// ResendOrderCommandHandler handles operator-triggered resends.
// Moves the order to status "retrying", bumps its dispatch sequence, and
// schedules a fresh dispatch attempt fenced on the bumped sequence. Any
// attempt that was still in flight for the previous sequence has its outcome
// discarded by the store, so the most recently scheduled attempt wins.
type ResendOrderCommandHandler struct {
	store     ports.OrderStore
	scheduler ports.DispatchScheduler
}

// NewResendOrderCommandHandler creates a handler for resend operations.
func NewResendOrderCommandHandler(
	store ports.OrderStore,
	scheduler ports.DispatchScheduler,
) ResendOrderCommandHandler {
	return ResendOrderCommandHandler{
		store:     store,
		scheduler: scheduler,
	}
}

// Handle processes the resend command.
// Looks up the order (ObjectNotFound when absent), patches status to
// "retrying" with a bumped dispatch sequence, and queues a fresh attempt
// carrying the current record. The "retrying" status is observable via
// lookup before the attempt completes.
func (h *ResendOrderCommandHandler) Handle(ctx context.Context, cmd ResendOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := h.store.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	retrying, err := aggregate.Status().Retry()
	if err != nil {
		return kernel.UUID{}, err
	}

	seq := aggregate.DispatchSeq() + 1
	found, err := h.store.Patch(ctx, cmd.OrderID(), order.Patch{
		Status:      &retrying,
		DispatchSeq: &seq,
	})
	if err != nil {
		return kernel.UUID{}, err
	}
	if !found {
		return kernel.UUID{}, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	snapshot, err := order.RestoreOrder(
		aggregate.ID(),
		aggregate.Customer(),
		aggregate.Items(),
		retrying,
		aggregate.TrackingID(),
		aggregate.LastError(),
		seq,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.scheduler.Schedule(ctx, snapshot); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
