package queries

import (
	"context"

	"artisan/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates in the database; no orders are loaded.
//
// Example:
//
//	stats, err := NewGetOrderStatsQueryHandler(db).Handle(ctx, NewGetOrderStatsQuery())
//	fmt.Printf("%d of %d orders delivered\n", stats.ByStatus[order.Delivered], stats.Total)
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStats, error) {
	if err := query.Validate(); err != nil {
		return OrderStats{}, err
	}

	stats := OrderStats{ByStatus: make(map[order.Status]int64, len(order.Statuses()))}
	for _, s := range order.Statuses() {
		stats.ByStatus[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return OrderStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawStatus string
			count     int64
		)
		if err = rows.Scan(&rawStatus, &count); err != nil {
			return OrderStats{}, err
		}

		stats.Total += count
		if s, parseErr := order.ParseStatus(rawStatus); parseErr == nil {
			stats.ByStatus[s] = count
		}
	}

	if err = rows.Err(); err != nil {
		return OrderStats{}, err
	}

	return stats, nil
}
