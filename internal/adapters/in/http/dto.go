package http

import (
	"time"

	"artisan/internal/core/application/usecases/queries"
	"artisan/internal/core/domain/model/order"
)

// Order is the wire representation of an order.
type Order struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Phone      string    `json:"phone"`
	Details    string    `json:"details"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewOrder uses pointers so an absent field is told apart from an empty one.
type NewOrder struct {
	ClientName *string  `json:"client_name"`
	Phone      *string  `json:"phone"`
	Details    *string  `json:"details"`
	Price      *float64 `json:"price"`
}

type StatusUpdate struct {
	Status *string `json:"status"`
}

type LoginRequest struct {
	Password *string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type VerifyResponse struct {
	Valid bool   `json:"valid"`
	User  string `json:"user"`
}

type OrderStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Ready     int64 `json:"ready"`
	Delivered int64 `json:"delivered"`
}

type Message struct {
	Message string `json:"message"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SearchOrdersParams defines parameters for SearchOrders.
type SearchOrdersParams struct {
	Q *string `form:"q,omitempty" json:"q,omitempty"`
}

func toOrder(o *order.Order) Order {
	return Order{
		ID:         o.ID().String(),
		ClientName: o.ClientName(),
		Phone:      o.Phone(),
		Details:    o.Details(),
		Price:      o.Price(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
	}
}

func toOrders(orders []*order.Order) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func toOrderStats(stats queries.OrderStats) OrderStats {
	return OrderStats{
		Total:     stats.Total,
		Pending:   stats.ByStatus[order.Pending],
		Ready:     stats.ByStatus[order.Ready],
		Delivered: stats.ByStatus[order.Delivered],
	}
}
