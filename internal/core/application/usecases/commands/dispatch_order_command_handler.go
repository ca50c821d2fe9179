package commands

import (
	"context"
	"errors"
	"log/slog"

	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/core/ports"
)

// DispatchOrderCommandHandler performs exactly one forwarding attempt to the
// courier endpoint and records the outcome on the order record.
//
// The attempt is terminal for this invocation: success, remote rejection, and
// transport fault all end with a single fenced patch of the status, tracking,
// and error fields, and no retry is scheduled. Retry is an explicit operator
// operation (resend), which keeps every attempt's outcome independently
// visible in the order's status and error fields.
type DispatchOrderCommandHandler struct {
	store   ports.OrderStore
	courier ports.CourierClient
	logger  *slog.Logger
}

// NewDispatchOrderCommandHandler creates a handler for dispatch attempts.
func NewDispatchOrderCommandHandler(
	store ports.OrderStore,
	courier ports.CourierClient,
	logger *slog.Logger,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		store:   store,
		courier: courier,
		logger:  logger.With("component", "dispatch_handler"),
	}
}

// Handle executes one dispatch attempt.
//
// The outbound payload carries only intake data (order id, customer, items).
// The outcome patch touches only status, tracking, and error fields and is
// fenced on the snapshot's dispatch sequence, so an outcome that lost a race
// against a newer resend is discarded silently. Handle returns an error only
// for a persistence fault while recording the outcome; courier failures are
// captured into the order record, not propagated.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate := cmd.Order()
	orderID := aggregate.ID()

	result, sendErr := h.courier.Send(ctx, ports.DispatchRequest{
		OrderID:  orderID.String(),
		Customer: aggregate.Customer(),
		Items:    aggregate.Items(),
	})

	patch, err := h.outcomePatch(aggregate, result, sendErr)
	if err != nil {
		return err
	}

	found, err := h.store.Patch(ctx, orderID, patch)
	if err != nil {
		return err
	}

	h.logOutcome(ctx, orderID.String(), result, sendErr, found)
	return nil
}

// outcomePatch maps the courier call outcome onto a fenced store patch.
func (h *DispatchOrderCommandHandler) outcomePatch(
	aggregate *order.Order,
	result ports.DispatchResult,
	sendErr error,
) (order.Patch, error) {
	seq := aggregate.DispatchSeq()

	if sendErr == nil {
		sent, err := aggregate.Status().Send()
		if err != nil {
			return order.Patch{}, err
		}

		trackingID := result.TrackingID
		noError := ""
		return order.Patch{
			Status:        &sent,
			TrackingID:    &trackingID,
			LastError:     &noError,
			IfDispatchSeq: &seq,
		}, nil
	}

	failed, err := aggregate.Status().Fail()
	if err != nil {
		return order.Patch{}, err
	}

	detail := failureDetail(sendErr)
	return order.Patch{
		Status:        &failed,
		LastError:     &detail,
		IfDispatchSeq: &seq,
	}, nil
}

// failureDetail extracts the error text recorded on the order: the raw
// response body for remote rejections, the fault description otherwise.
func failureDetail(sendErr error) string {
	var rejection *ports.RejectionError
	if errors.As(sendErr, &rejection) {
		return rejection.Body
	}
	return sendErr.Error()
}

// logOutcome emits the one diagnostic line per attempt. Logging is
// best-effort and never affects the recorded outcome.
func (h *DispatchOrderCommandHandler) logOutcome(
	ctx context.Context,
	orderID string,
	result ports.DispatchResult,
	sendErr error,
	found bool,
) {
	switch {
	case !found:
		h.logger.WarnContext(ctx, "dispatch outcome for unknown order discarded", "order_id", orderID)
	case sendErr == nil:
		h.logger.InfoContext(ctx, "order sent to courier", "order_id", orderID, "tracking_id", result.TrackingID)
	default:
		h.logger.ErrorContext(ctx, "failed to send order to courier", "order_id", orderID, "error", sendErr)
	}
}
