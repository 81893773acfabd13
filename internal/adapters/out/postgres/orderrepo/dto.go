// Package orderrepo persists Order aggregates as rows of the orders table.
// Each row is a self-contained order document: there are no joins and no
// foreign keys, and every statement addresses a single row.
package orderrepo

import (
	"time"

	"artisan/internal/core/domain/model/kernel"
	"artisan/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the stored shape of an order. Status is kept as its wire name so
// the table reads the same as the API.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientName string    `gorm:"not null;index"`
	Phone      string    `gorm:"not null"`
	Details    string    `gorm:"not null"`
	Price      float64   `gorm:"not null"`
	Status     string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt  time.Time `gorm:"not null;index:idx_orders_created_at,sort:desc"`
}

// TableName overrides gorm's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		ClientName: aggregate.ClientName(),
		Phone:      aggregate.Phone(),
		Details:    aggregate.Details(),
		Price:      aggregate.Price(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// ToDomain rehydrates a stored row. Rows holding an unknown status are reported
// as errors rather than silently coerced.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.ClientName, dto.Phone, dto.Details, dto.Price, status, dto.CreatedAt)
}
