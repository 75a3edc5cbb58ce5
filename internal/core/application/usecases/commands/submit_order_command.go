package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand carries a customer's raw order payload into the
// lifecycle core. The payload keeps its submitted shape here; alias
// resolution and structural validation happen in the domain when the
// handler builds the aggregate, so a resubmission of the same payload
// always normalizes identically.
type SubmitOrderCommand struct {
	submission order.Submission

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command from a raw submission payload.
func NewSubmitOrderCommand(submission order.Submission) SubmitOrderCommand {
	return SubmitOrderCommand{
		submission: submission,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Submission returns the raw payload as submitted.
func (c SubmitOrderCommand) Submission() order.Submission {
	return c.submission
}
