package commands

import (
	"context"

	"artisan/internal/core/ports"
	"artisan/internal/pkg/errs"
)

// DeleteMessage is reported to the caller after a successful delete.
const DeleteMessage = "Order deleted successfully"

// DeleteOrderCommandHandler removes one order. The delete is a single atomic
// store call, so it runs without a unit of work.
type DeleteOrderCommandHandler struct {
	repo ports.OrderRepository
}

func NewDeleteOrderCommandHandler(repo ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		repo: repo,
	}
}

// Handle fails with an errs.ObjectNotFoundError when nothing was deleted, so a
// second delete of the same id is reported as missing.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	deleted, err := h.repo.Delete(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if deleted == 0 {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
	}

	return nil
}
