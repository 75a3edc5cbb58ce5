package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// The enumeration is closed but deliberately not a forward-only chain: the
// back office may move an order from any status to any other status, so a
// cancelled order can be reinstated and a misclicked delivery reverted.
// Only membership in the enumeration is enforced.
type Status string

const (
	// StatusPending is the initial status assigned at submission.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the office acknowledged the order.
	StatusConfirmed Status = "confirmed"

	// StatusPreparing indicates the order is being prepared.
	StatusPreparing Status = "preparing"

	// StatusOnTheWay indicates the order left with a driver.
	StatusOnTheWay Status = "on_the_way"

	// StatusDelivered indicates the order reached the customer.
	// Orders in this status count toward revenue.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the order was called off.
	StatusCancelled Status = "cancelled"
)

// AllStatuses returns the closed status enumeration in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusOnTheWay,
		StatusDelivered,
		StatusCancelled,
	}
}

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusConfirmed: {},
		StatusPreparing: {},
		StatusOnTheWay:  {},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// ParseStatus converts a raw string into a Status, rejecting values outside
// the enumeration.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks membership in the closed status enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
