package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically reports products needing replenishment.
// Runs every minute over the products table.
type LowStockReportJob struct {
	handler queries.GetLowStockProductsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockReportJob creates a new job for the replenishment report.
// Uses GetLowStockProductsQueryHandler to read the product counters every minute.
func NewLowStockReportJob(handler queries.GetLowStockProductsQueryHandler, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low-stock report job to run every minute.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetLowStockProductsQuery()

		products, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
			return
		}

		for _, p := range products {
			j.logger.WarnContext(ctx, "Product below reorder level",
				"product_id", p.ID.Value(),
				"name", p.Name,
				"units_in_stock", p.UnitsInStock,
				"units_on_order", p.UnitsOnOrder,
				"reorder_level", p.ReorderLevel,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running every minute)")
	return nil
}

// Stop stops the low-stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
