package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StockReportJob periodically reports catalog items running low on stock.
// Runs every five minutes and logs each item below the configured threshold.
type StockReportJob struct {
	handler   queries.GetLowStockItemsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStockReportJob creates a new job for reporting low stock items.
// Uses GetLowStockItemsQueryHandler to read the catalog with the given threshold.
func NewStockReportJob(
	handler queries.GetLowStockItemsQueryHandler, threshold int, logger *slog.Logger,
) *StockReportJob {
	return &StockReportJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stock_report_job"),
	}
}

// Start begins the stock report job to run every five minutes.
func (j *StockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetLowStockItemsQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stock report job misconfigured", "error", queryErr)
			return
		}

		items, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stock report job failed", "error", handleErr)
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Item is running low on stock",
				"item_id", item.ID.String(),
				"name", item.Name,
				"stock", item.Stock,
				"threshold", j.threshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock report job started (running every five minutes)")
	return nil
}

// Stop stops the stock report job.
func (j *StockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock report job stopped")
}
