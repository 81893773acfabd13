package jobs

import (
	"context"
	"log/slog"
	"time"

	"artisan/internal/core/application/usecases/queries"
	"artisan/internal/core/domain/model/order"
	"artisan/internal/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultOrderStatsSchedule refreshes the gauges every five minutes.
const DefaultOrderStatsSchedule = "0 */5 * * * *"

const orderStatsTimeout = 30 * time.Second

type OrderStatsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.OrderStats, error)
}

// OrderStatsJob periodically publishes the number of orders per status to the
// artisan_orders_by_status gauge.
type OrderStatsJob struct {
	handler  OrderStatsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty one means DefaultOrderStatsSchedule.
func NewOrderStatsJob(handler OrderStatsHandler, schedule string, logger *slog.Logger) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultOrderStatsSchedule
	}
	return &OrderStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Run refreshes the gauges once. On failure the previous values stay in place.
func (j *OrderStatsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, orderStatsTimeout)
	defer cancel()

	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("order_stats_job").Inc()
		return err
	}

	metrics.SetOrdersByStatus(stats.ByStatus)
	j.logger.InfoContext(ctx, "Order stats refreshed",
		"total", stats.Total,
		"pending", stats.ByStatus[order.Pending],
		"ready", stats.ByStatus[order.Ready],
		"delivered", stats.ByStatus[order.Delivered],
	)
	return nil
}

// Start schedules Run and performs a first refresh right away so /metrics is
// populated before the first tick.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err = j.Run(ctx); err != nil {
		j.logger.WarnContext(ctx, "Initial order stats refresh failed", "error", err)
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
