package order

import (
	"errors"
	"time"

	"artisan/internal/core/domain/model/kernel"
	"artisan/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned by Validate for an Order built without
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer commission.
//
// Fields are private; the status can only move through ChangeStatus, which keeps
// it inside the closed Status set.
type Order struct {
	id         kernel.UUID
	clientName string
	phone      string
	details    string
	price      float64
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates a Pending order. createdAt is normalised to UTC with
// microsecond precision, the resolution the store keeps, so that a stored order
// reads back equal to the one that was written.
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Alice", "555-1111", "custom mug", 25, time.Now())
func NewOrder(
	id kernel.UUID,
	clientName string,
	phone string,
	details string,
	price float64,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, clientName, phone, details, price, Pending, createdAt)
}

// RestoreOrder rebuilds an order from persisted state. It applies the same
// checks as NewOrder plus status validation.
func RestoreOrder(
	id kernel.UUID,
	clientName string,
	phone string,
	details string,
	price float64,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		clientName:    clientName,
		phone:         phone,
		details:       details,
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports whether the order went through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientName() string {
	return o.clientName
}

func (o *Order) Phone() string {
	return o.phone
}

func (o *Order) Details() string {
	return o.details
}

func (o *Order) Price() float64 {
	return o.price
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to status. Setting the current status again is
// allowed and leaves the order unchanged.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	o.createdAt = createdAt.UTC().Truncate(time.Microsecond)
	return nil
}
