package queries

import (
	"context"
	"strings"

	"artisan/internal/core/domain/model/order"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle returns at most MaxSearchResults matches, newest first. The search
// text is taken literally: "%" and "_" match only themselves.
func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Text() == "" {
		return []*order.Order{}, nil
	}

	pattern := "%" + likeEscaper.Replace(query.Text()) + "%"

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE client_name ILIKE ? ESCAPE '\'
		ORDER BY created_at DESC
		LIMIT ?
	`, pattern, MaxSearchResults).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
