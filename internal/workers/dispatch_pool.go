// Package workers runs the background dispatch attempts.
//
// The DispatchPool is the dispatch scheduler of the application: intake and
// resend hand it an order snapshot, a bounded queue decouples them from the
// courier call, and a fixed set of workers drains the queue.
package workers

import (
	"context"
	"log/slog"

	"orderagent/internal/core/application/usecases/commands"
	"orderagent/internal/core/domain/model/order"

	"golang.org/x/sync/errgroup"
)

// DispatchPool schedules dispatch attempts on a bounded queue drained by a
// fixed number of workers. It implements the DispatchScheduler port.
//
// Schedule returns as soon as the attempt is queued; it blocks only when the
// queue is full and gives up when the caller's context is done. Each queued
// attempt carries the order snapshot it was scheduled with, including the
// dispatch sequence that fences its outcome.
type DispatchPool struct {
	handler commands.DispatchOrderCommandHandler
	queue   chan commands.DispatchOrderCommand
	workers int
	logger  *slog.Logger

	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewDispatchPool creates a pool with the given number of workers and queue
// capacity. The pool does not process anything until Start is called.
func NewDispatchPool(
	handler commands.DispatchOrderCommandHandler,
	workers int,
	queueSize int,
	logger *slog.Logger,
) *DispatchPool {
	return &DispatchPool{
		handler: handler,
		queue:   make(chan commands.DispatchOrderCommand, queueSize),
		workers: workers,
		logger:  logger.With("component", "dispatch_pool"),
	}
}

// Schedule queues one dispatch attempt for the given order snapshot.
// Blocks while the queue is full; returns the context's error if the caller
// gives up before the attempt could be queued.
func (p *DispatchPool) Schedule(ctx context.Context, aggregate *order.Order) error {
	cmd, err := commands.NewDispatchOrderCommand(aggregate)
	if err != nil {
		return err
	}

	select {
	case p.queue <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start launches the workers. Attempts queued before Start are processed
// once the workers are up.
func (p *DispatchPool) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	group, ctx := errgroup.WithContext(ctx)
	p.group = group

	for range p.workers {
		group.Go(func() error {
			p.run(ctx)
			return nil
		})
	}

	p.logger.InfoContext(ctx, "Dispatch pool started",
		"workers", p.workers, "queue_size", cap(p.queue))
}

// Stop shuts the workers down and waits for in-flight attempts to finish.
// Attempts still sitting in the queue are abandoned; their orders keep the
// status they were queued with and can be resent.
func (p *DispatchPool) Stop() {
	if p.cancel == nil {
		return
	}

	p.cancel()
	_ = p.group.Wait()
	p.logger.Info("Dispatch pool stopped")
}

// run drains the queue until the pool context is canceled.
func (p *DispatchPool) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-p.queue:
			if err := p.handler.Handle(ctx, cmd); err != nil {
				// The courier outcome is already captured in the order
				// record; an error here means recording it failed.
				p.logger.ErrorContext(ctx, "Dispatch attempt could not record its outcome",
					"order_id", cmd.Order().ID().String(), "error", err)
			}
		}
	}
}
