// Package jobs provides scheduled background tasks for the orders service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OrderStatsJob counts orders per status and publishes the result to the
// artisan_orders_by_status gauge. It runs once at start and then on STATS_SCHEDULE
// (default "0 */5 * * * *").
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statsHandler, cfg.StatsSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and counted in artisan_operation_errors_total;
// the gauges keep their last values until the next successful run.
package jobs
