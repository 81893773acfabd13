package queries

import (
	"context"

	"artisan/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns orders sorted by created_at descending. Ties keep no
// particular order.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
		LIMIT ?
	`, MaxListedOrders).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
