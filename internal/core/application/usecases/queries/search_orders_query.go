package queries

import (
	"errors"

	"artisan/internal/pkg/guard"
)

// MaxSearchResults caps SearchOrdersQuery results.
const MaxSearchResults = 100

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery matches orders whose client name contains Text, ignoring
// case. Phone and details are not searched.
//
// Example:
//
//	query := NewSearchOrdersQuery("ali")
//	orders, err := handler.Handle(ctx, query) // "Alice", "Natalia", ...
type SearchOrdersQuery struct {
	text string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery accepts any text. An empty one matches nothing.
func NewSearchOrdersQuery(text string) SearchOrdersQuery {
	return SearchOrdersQuery{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}
}

func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

func (q SearchOrdersQuery) Text() string {
	return q.text
}
