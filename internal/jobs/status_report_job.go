package jobs

import (
	"context"
	"log/slog"

	"orderagent/internal/core/application/usecases/queries"
	"orderagent/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StatusReportJob periodically logs how many orders sit in each status.
// Runs once a minute so operators can spot a growing failed_to_send backlog
// without querying the store by hand.
type StatusReportJob struct {
	handler queries.CountOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusReportJob creates a new job that reports order status counts.
func NewStatusReportJob(handler queries.CountOrdersByStatusQueryHandler, logger *slog.Logger) *StatusReportJob {
	return &StatusReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_report_job"),
	}
}

// Start begins the status report job to run at the top of every minute.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewCountOrdersByStatusQuery()

		counts, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order status report",
			"new", counts[order.New],
			"sent_to_courier", counts[order.SentToCourier],
			"failed_to_send", counts[order.FailedToSend],
			"retrying", counts[order.Retrying],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started (running every minute)")
	return nil
}

// Stop stops the status report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}
