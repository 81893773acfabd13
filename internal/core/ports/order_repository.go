// Package ports defines the contracts between the orders domain and its
// infrastructure. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"artisan/internal/core/domain/model/kernel"
	"artisan/internal/core/domain/model/order"
)

// OrderRepository is the write-side persistence contract for order documents.
// Each call touches exactly one document and is atomic on its own.
type OrderRepository interface {
	// Add inserts a new order. The order must be valid and its id unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get holding a row lock until the surrounding unit of work ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update writes the mutable fields of an existing order (its status).
	// Returns an errs.ObjectNotFoundError if the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order with id and reports how many documents were deleted.
	Delete(ctx context.Context, id kernel.UUID) (int64, error)
}
