package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long an order may stay unshipped before the backlog
// report calls it out individually.
const staleAfter = 7 * 24 * time.Hour

// PendingShipmentsJob periodically reports the backlog of orders awaiting
// shipment. Runs every minute over the orders table.
type PendingShipmentsJob struct {
	handler queries.GetUnshippedOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingShipmentsJob creates a new job for the shipment backlog report.
// Uses GetUnshippedOrdersQueryHandler to read the open orders every minute.
func NewPendingShipmentsJob(handler queries.GetUnshippedOrdersQueryHandler, logger *slog.Logger) *PendingShipmentsJob {
	return &PendingShipmentsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_shipments_job"),
	}
}

// Start begins the pending shipments job to run every minute.
func (j *PendingShipmentsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetUnshippedOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending shipments job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Shipment backlog", "unshipped_orders", len(orders))

		for _, o := range orders {
			if age := time.Since(o.EntryDate); age > staleAfter {
				j.logger.WarnContext(ctx, "Order awaiting shipment too long",
					"order_id", o.ID.Value(),
					"customer_id", o.CustomerID.String(),
					"open_for", age.Round(time.Hour).String(),
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending shipments job started (running every minute)")
	return nil
}

// Stop stops the pending shipments job.
func (j *PendingShipmentsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending shipments job stopped")
}
