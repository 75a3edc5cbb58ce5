// Package commands contains the business operations that modify order
// state. Commands follow a consistent pattern: constructor validation,
// transaction management through a unit of work, persistence, and a
// best-effort broadcast after the transaction commits.
package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle for a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh unit of work per operation, keeping
	// concurrent commands isolated from one another.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
