package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A violated order-number uniqueness
	// constraint is reported as errs.ErrUniquenessConflict so the caller
	// can regenerate the number and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its storage identifier.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete hard-removes an order. Deletion is terminal and irreversible.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
