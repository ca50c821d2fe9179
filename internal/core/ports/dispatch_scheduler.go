package ports

import (
	"context"

	"orderagent/internal/core/domain/model/order"
)

// DispatchScheduler queues a dispatch attempt to run in the background.
//
// Schedule hands the order snapshot to the dispatch workers and returns as
// soon as the attempt is queued; the caller's request/response cycle never
// waits for the courier call. The snapshot carries the dispatch sequence the
// attempt is fenced on. Schedule blocks only when the queue is full, and
// returns the context's error if the caller gives up while waiting.
type DispatchScheduler interface {
	Schedule(ctx context.Context, aggregate *order.Order) error
}
