package ports

import "context"

// UnitOfWork coordinates a transaction over the order store. Command
// handlers begin a transaction, perform repository operations, and either
// commit or roll back as one unit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
}
