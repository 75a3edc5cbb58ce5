package commands

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// SubmitOrderResult is the minimal summary returned to the submitting
// customer. Full order detail is deliberately withheld from customer-facing
// clients; the back office sees the complete record through the queries.
type SubmitOrderResult struct {
	OrderNumber       string
	TotalAmount       float64
	EstimatedDelivery string
	ContactInfo       string
}

// SubmitOrderCommandHandler accepts a raw submission, normalizes and
// validates it through the aggregate, assigns an order number, persists the
// pending record, and broadcasts a created event after commit.
//
// An order-number collision at the store is recovered by regenerating the
// number and retrying the create exactly once; the probability of a second
// collision is negligible at expected volumes.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher

	deliveryEstimate string
	supportContact   string
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
// deliveryEstimate and supportContact are static strings reported back to
// the customer in the submission summary.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	deliveryEstimate string,
	supportContact string,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory:       uowFactory,
		publisher:        publisher,
		deliveryEstimate: deliveryEstimate,
		supportContact:   supportContact,
	}
}

// Handle processes the submission. Validation failures surface before any
// write, so a failed submission never leaves partial state behind.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateOrderNumber(time.Now()),
		cmd.Submission(),
	)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	if err = h.persist(ctx, aggregate); errors.Is(err, errs.ErrUniquenessConflict) {
		aggregate, err = order.NewOrder(
			aggregate.ID(),
			order.GenerateOrderNumber(time.Now()),
			cmd.Submission(),
		)
		if err != nil {
			return SubmitOrderResult{}, err
		}
		err = h.persist(ctx, aggregate)
	}
	if err != nil {
		return SubmitOrderResult{}, err
	}

	h.publisher.OrderCreated(aggregate)

	return SubmitOrderResult{
		OrderNumber:       aggregate.Number().String(),
		TotalAmount:       aggregate.TotalAmount(),
		EstimatedDelivery: h.deliveryEstimate,
		ContactInfo:       h.supportContact,
	}, nil
}

func (h SubmitOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
