package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Validation rule sentinels. Every validation failure unwraps to exactly one
// of these, so callers can classify failures with errors.Is while still
// reporting a human-readable message.
var (
	// ErrMissingCustomerInfo indicates no accepted input shape supplied all
	// of customer name, phone number, and address.
	ErrMissingCustomerInfo = errors.New("customer name, phone number and address are required")

	// ErrEmptyItemList indicates the submission carried no line items.
	ErrEmptyItemList = errors.New("order must contain at least one item")

	// ErrInvalidItem indicates a line item is missing its name, has a
	// quantity below 1, or has a negative price.
	ErrInvalidItem = errors.New("order item is invalid")

	// ErrInvalidTotal indicates the total amount is absent or not strictly
	// positive.
	ErrInvalidTotal = errors.New("total amount must be greater than zero")

	// ErrInvalidPaymentMethod indicates a payment method outside the closed
	// enumeration was supplied.
	ErrInvalidPaymentMethod = errors.New("payment method is not supported")
)

// ValidationError reports which submission rule was violated. Rule is one of
// the sentinels above and is exposed through Unwrap for errors.Is checks.
type ValidationError struct {
	Rule   error
	Detail string
}

func newValidationError(rule error, detail string) *ValidationError {
	return &ValidationError{Rule: rule, Detail: detail}
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Rule, e.Detail)
	}
	return e.Rule.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Rule
}

// CustomerInfo is the nested customer shape some clients submit instead of
// flat fields.
type CustomerInfo struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ItemInput is a line item as submitted, before alias resolution. Name and
// Product are aliases for the same field; ProductID may alternatively arrive
// as a numeric id.
type ItemInput struct {
	Name      string      `json:"name,omitempty"`
	Product   string      `json:"product,omitempty"`
	ID        json.Number `json:"id,omitempty"`
	ProductID string      `json:"productId,omitempty"`
	Quantity  int         `json:"quantity"`
	Price     float64     `json:"price"`
	Image     string      `json:"image,omitempty"`
}

// Submission is the union of accepted order payload shapes. Customer contact
// may arrive flat, nested under Customer, or through the DeliveryAddress and
// Location aliases; the monetary total may arrive as either TotalAmount or
// Total. Normalize resolves every alias into the canonical flat fields.
type Submission struct {
	CustomerName    string        `json:"customerName,omitempty"`
	PhoneNumber     string        `json:"phoneNumber,omitempty"`
	Address         string        `json:"address,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	Customer        *CustomerInfo `json:"customer,omitempty"`
	Location        *Location     `json:"location,omitempty"`
	Items           []ItemInput   `json:"items"`
	TotalAmount     *float64      `json:"totalAmount,omitempty"`
	Total           *float64      `json:"total,omitempty"`
	PaymentMethod   string        `json:"paymentMethod,omitempty"`
}

// Normalize resolves every alias pair into the canonical flat fields and
// clears the alias sources, so the ambiguity never travels past this
// boundary. Precedence is fixed: the explicit flat field wins, then the
// nested or alternate source in declaration order:
//
//   - customerName, else customer.name
//   - phoneNumber, else customer.phone
//   - address, else customer.address, else deliveryAddress, else location.address
//   - totalAmount, else total
//   - item name, else item product
//   - item productId, else string conversion of the numeric item id
//
// An omitted payment method becomes the cash_on_delivery default. The
// operation is idempotent: normalizing an already-normalized submission is
// a no-op.
func (s Submission) Normalize() Submission {
	out := s

	out.CustomerName = strings.TrimSpace(out.CustomerName)
	out.PhoneNumber = strings.TrimSpace(out.PhoneNumber)
	out.Address = strings.TrimSpace(out.Address)

	if s.Customer != nil {
		if out.CustomerName == "" {
			out.CustomerName = strings.TrimSpace(s.Customer.Name)
		}
		if out.PhoneNumber == "" {
			out.PhoneNumber = strings.TrimSpace(s.Customer.Phone)
		}
		if out.Address == "" {
			out.Address = strings.TrimSpace(s.Customer.Address)
		}
	}
	if out.Address == "" {
		out.Address = strings.TrimSpace(s.DeliveryAddress)
	}
	if out.Address == "" && s.Location != nil {
		out.Address = strings.TrimSpace(s.Location.Address)
	}

	if out.TotalAmount == nil && s.Total != nil {
		total := *s.Total
		out.TotalAmount = &total
	}

	if len(s.Items) > 0 {
		items := make([]ItemInput, len(s.Items))
		for i, item := range s.Items {
			normalized := item
			normalized.Name = strings.TrimSpace(normalized.Name)
			if normalized.Name == "" {
				normalized.Name = strings.TrimSpace(item.Product)
			}
			if normalized.ProductID == "" && item.ID != "" {
				normalized.ProductID = item.ID.String()
			}
			normalized.Product = ""
			normalized.ID = ""
			items[i] = normalized
		}
		out.Items = items
	}

	if out.PaymentMethod == "" {
		out.PaymentMethod = CashOnDelivery.String()
	}

	out.Customer = nil
	out.DeliveryAddress = ""
	out.Total = nil

	return out
}

// Validate checks a normalized submission against the structural rules, in
// order, failing fast on the first violation: customer contact complete,
// item list non-empty, every item valid, total strictly positive, payment
// method inside the enumeration. The returned error is a *ValidationError
// unwrapping to the violated rule sentinel.
func (s Submission) Validate() error {
	if s.CustomerName == "" || s.PhoneNumber == "" || s.Address == "" {
		return newValidationError(ErrMissingCustomerInfo, "")
	}

	if len(s.Items) == 0 {
		return newValidationError(ErrEmptyItemList, "")
	}
	for i, item := range s.Items {
		switch {
		case item.Name == "":
			return newValidationError(ErrInvalidItem, fmt.Sprintf("item %d has no name", i))
		case item.Quantity < 1:
			return newValidationError(ErrInvalidItem, fmt.Sprintf("item %d quantity must be at least 1", i))
		case item.Price < 0:
			return newValidationError(ErrInvalidItem, fmt.Sprintf("item %d price must not be negative", i))
		}
	}

	if s.TotalAmount == nil || *s.TotalAmount <= 0 {
		return newValidationError(ErrInvalidTotal, "")
	}

	if _, err := ParsePaymentMethod(s.PaymentMethod); err != nil {
		return newValidationError(ErrInvalidPaymentMethod, s.PaymentMethod)
	}

	return nil
}
