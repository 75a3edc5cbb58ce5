package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// DeleteOrderCommandHandler hard-removes an order and broadcasts a deleted
// event carrying the identifier only. A missing order surfaces as
// errs.ErrObjectNotFound and triggers no broadcast.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order deletions.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.OrderDeleted(cmd.OrderID())
	return nil
}
