package order

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"orderdesk/internal/pkg/errs"
)

// OrderNumber is the human-readable, globally unique identifier operators
// use to refer to an order. It encodes the creation instant for readability
// and carries a random component instead of a central sequence counter.
//
// Uniqueness is not guaranteed by generation alone: the store enforces a
// uniqueness constraint, and a collision there is handled by regenerating
// the number and retrying the create once.
type OrderNumber string

const orderNumberPrefix = "ORD"

// GenerateOrderNumber produces an order number from the given instant plus
// six random digits, e.g. "ORD-20250101120000-483920".
func GenerateOrderNumber(now time.Time) OrderNumber {
	return OrderNumber(fmt.Sprintf(
		"%s-%s-%06d",
		orderNumberPrefix,
		now.UTC().Format("20060102150405"),
		rand.IntN(1000000),
	))
}

// Validate rejects empty or foreign-format order numbers.
func (n OrderNumber) Validate() error {
	if n == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if !strings.HasPrefix(string(n), orderNumberPrefix+"-") {
		return errs.NewValueIsInvalidError("orderNumber")
	}
	return nil
}

// String returns the wire representation of the order number.
func (n OrderNumber) String() string {
	return string(n)
}
