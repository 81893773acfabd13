package commands

import (
	"errors"
	"math"

	"artisan/internal/core/domain/model/kernel"
	"artisan/internal/pkg/errs"
	"artisan/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price")
)

// CreateOrderCommand represents a request to register a new commission.
// Client name, phone and details are free text; presence is checked by the
// caller that decodes the request.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Alice", "555-1111", "custom mug", 25)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientName string
	phone      string
	details    string
	price      float64

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientName string,
	phone string,
	details string,
	price float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		clientName: clientName,
		phone:      phone,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

func (c CreateOrderCommand) Phone() string {
	return c.phone
}

func (c CreateOrderCommand) Details() string {
	return c.details
}

func (c CreateOrderCommand) Price() float64 {
	return c.price
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

// Any finite number is a price, negative ones included.
func (c *CreateOrderCommand) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
