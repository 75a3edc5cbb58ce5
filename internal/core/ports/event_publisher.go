package ports

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderEventPublisher fans order lifecycle events out to connected office
// observers. Delivery is best effort and at most once per event: a slow or
// disconnected observer never blocks or fails the triggering operation, so
// none of these methods return an error.
type OrderEventPublisher interface {
	// OrderCreated announces a newly accepted order.
	OrderCreated(aggregate *order.Order)

	// OrderUpdated announces a status or administrative change.
	OrderUpdated(aggregate *order.Order)

	// OrderDeleted announces a hard deletion, carrying the identifier only.
	OrderDeleted(id kernel.UUID)
}
