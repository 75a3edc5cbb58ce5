package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to a new status and optionally
// merges administrative fields. The status string is checked against the
// closed enumeration here, before any record is touched.
type UpdateOrderStatusCommand struct {
	orderID     kernel.UUID
	status      order.Status
	adminUpdate order.AdminUpdate

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status-update command. rawStatus
// must belong to the status enumeration; adminUpdate fields left nil are
// not merged.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	rawStatus string,
	adminUpdate order.AdminUpdate,
) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:     orderID,
		status:      status,
		adminUpdate: adminUpdate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the validated target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// AdminUpdate returns the optional administrative fields.
func (c UpdateOrderStatusCommand) AdminUpdate() order.AdminUpdate {
	return c.adminUpdate
}
