// Package queries contains the read-only use cases. Handlers read the orders
// table directly through GORM and rebuild domain orders from the rows; they
// never go through the write-side repository or a unit of work.
package queries

import (
	"database/sql"
	"fmt"
	"time"

	"artisan/internal/core/domain/model/kernel"
	"artisan/internal/core/domain/model/order"

	"github.com/google/uuid"
)

const orderColumns = `id, client_name, phone, details, price, status, created_at`

// scanOrders drains rows selected with orderColumns. The result is never nil.
func scanOrders(rows *sql.Rows) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			clientName string
			phone      string
			details    string
			price      float64
			rawStatus  string
			createdAt  time.Time
		)

		if err := rows.Scan(&id, &clientName, &phone, &details, &price, &rawStatus, &createdAt); err != nil {
			return nil, err
		}

		o, err := restoreOrder(id, clientName, phone, details, price, rawStatus, createdAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func restoreOrder(
	id uuid.UUID,
	clientName, phone, details string,
	price float64,
	rawStatus string,
	createdAt time.Time,
) (*order.Order, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}

	return order.RestoreOrder(orderID, clientName, phone, details, price, status, createdAt)
}
