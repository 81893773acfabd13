package queries

import (
	"errors"

	"artisan/internal/core/domain/model/order"
	"artisan/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery counts stored orders per status.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// OrderStats always carries an entry for every status in order.Statuses, zero
// when no order has it. Total also counts rows whose stored status is unknown.
type OrderStats struct {
	Total    int64
	ByStatus map[order.Status]int64
}
