package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// PaymentMethod represents how the customer pays for an order.
type PaymentMethod string

const (
	// CashOnDelivery is the default payment method when none is supplied.
	CashOnDelivery PaymentMethod = "cash_on_delivery"

	// Online indicates the order was paid through an online channel.
	Online PaymentMethod = "online"
)

// ParsePaymentMethod converts a raw string into a PaymentMethod. An empty
// string yields the CashOnDelivery default; anything outside the closed
// enumeration is rejected.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return CashOnDelivery, nil
	}
	method := PaymentMethod(s)
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Validate checks membership in the closed payment-method enumeration.
func (m PaymentMethod) Validate() error {
	switch m {
	case CashOnDelivery, Online:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%q is not a valid payment method", string(m)),
		)
	}
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}
