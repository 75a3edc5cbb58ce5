package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a status transition and the
// optional administrative fields to an existing order. Concurrent updates
// to the same order are not serialized here; the store's last-write-wins
// behavior governs the outcome.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the transition and admin fields, persists
// the change, and broadcasts an updated event after commit. The full
// updated order is returned for the office caller.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
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

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}
	aggregate.ApplyAdminUpdate(cmd.AdminUpdate())

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.OrderUpdated(aggregate)

	return aggregate, nil
}
