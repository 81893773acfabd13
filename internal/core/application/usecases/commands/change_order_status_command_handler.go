package commands

import (
	"context"

	"artisan/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler performs the read-modify-write of a status
// change inside one transaction, holding the order's row lock throughout.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, err := NewChangeOrderStatusCommand(orderID, "ready")
//	if err != nil {
//	    return err // order.ErrStatusIsInvalid, nothing was read or written
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order as stored after the update. A missing order yields
// an errs.ObjectNotFoundError.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
