package order

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders carry
// validated state.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a customer's delivery request. Identity
// (order number) and items are immutable once assigned; only status and the
// administrative fields change afterwards, and only through the aggregate's
// methods.
type Order struct {
	id     kernel.UUID
	number OrderNumber

	customerName string
	phoneNumber  string
	address      string
	location     *Location

	items         []Item
	totalAmount   float64
	paymentMethod PaymentMethod

	status Status

	// Administrative fields, mutable only by office operations.
	notes             string
	assignedDriver    string
	estimatedDelivery *time.Time

	// createdAt is assigned by the store. updatedAt is stamped on every
	// mutation so the aggregate returned after an update carries a current
	// instant; the store rewrites it on persist.
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// AdminUpdate carries optional administrative fields for a status update.
// Nil (or blank, for strings) fields are left untouched on the order, so an
// update never erases a previously set value by omission.
type AdminUpdate struct {
	AssignedDriver    *string
	Notes             *string
	EstimatedDelivery *time.Time
}

// NewOrder builds a pending order from a customer submission. The submission
// is normalized and validated here, so callers pass raw payloads and the
// aggregate guarantees the canonical invariants. The id and number must be
// valid; items and totals are copied out of the normalized submission.
func NewOrder(id kernel.UUID, number OrderNumber, submission Submission) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := number.Validate(); err != nil {
		return nil, err
	}

	normalized := submission.Normalize()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}

	paymentMethod, err := ParsePaymentMethod(normalized.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(normalized.Items))
	for i, input := range normalized.Items {
		items[i] = Item{
			Name:      input.Name,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Price:     input.Price,
			Image:     input.Image,
		}
	}

	var location *Location
	if normalized.Location != nil {
		loc := *normalized.Location
		location = &loc
	}

	return &Order{
		id:            id,
		number:        number,
		customerName:  normalized.CustomerName,
		phoneNumber:   normalized.PhoneNumber,
		address:       normalized.Address,
		location:      location,
		items:         items,
		totalAmount:   *normalized.TotalAmount,
		paymentMethod: paymentMethod,
		status:        StatusPending,
		isConstructed: true,
	}, nil
}

// RestoreOrderParams carries the persisted state of an order for
// reconstruction by the repository layer.
type RestoreOrderParams struct {
	ID                kernel.UUID
	Number            OrderNumber
	CustomerName      string
	PhoneNumber       string
	Address           string
	Location          *Location
	Items             []Item
	TotalAmount       float64
	PaymentMethod     PaymentMethod
	Status            Status
	Notes             string
	AssignedDriver    string
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RestoreOrder reconstructs an order from persistence. It re-validates the
// identity, enumeration, and structural invariants so corrupt rows cannot
// reenter the domain as valid aggregates.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}
	if err := params.Number.Validate(); err != nil {
		return nil, err
	}
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaymentMethod.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                params.ID,
		number:            params.Number,
		customerName:      params.CustomerName,
		phoneNumber:       params.PhoneNumber,
		address:           params.Address,
		location:          params.Location,
		items:             params.Items,
		totalAmount:       params.TotalAmount,
		paymentMethod:     params.PaymentMethod,
		status:            params.Status,
		notes:             params.Notes,
		assignedDriver:    params.AssignedDriver,
		estimatedDelivery: params.EstimatedDelivery,
		createdAt:         params.CreatedAt,
		updatedAt:         params.UpdatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order was built through a constructor. Called by the
// repository before persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's storage identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the order's human-readable identifier.
func (o *Order) Number() OrderNumber {
	return o.number
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// PhoneNumber returns the customer's phone number.
func (o *Order) PhoneNumber() string {
	return o.phoneNumber
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Location returns the optional delivery geocoordinates, or nil.
func (o *Order) Location() *Location {
	if o.location == nil {
		return nil
	}
	loc := *o.location
	return &loc
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the office notes.
func (o *Order) Notes() string {
	return o.notes
}

// AssignedDriver returns the driver label, empty when unassigned.
func (o *Order) AssignedDriver() string {
	return o.assignedDriver
}

// EstimatedDelivery returns the estimated delivery instant, or nil.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// CreatedAt returns the store-assigned creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modification instant.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to newStatus. Any enumerated status is
// reachable from any other; values outside the enumeration are rejected and
// leave the order unchanged.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// ApplyAdminUpdate merges the administrative fields that were explicitly
// provided. Absent and blank values never overwrite existing ones.
func (o *Order) ApplyAdminUpdate(update AdminUpdate) {
	if update.AssignedDriver != nil && *update.AssignedDriver != "" {
		o.assignedDriver = *update.AssignedDriver
	}
	if update.Notes != nil && *update.Notes != "" {
		o.notes = *update.Notes
	}
	if update.EstimatedDelivery != nil {
		estimated := *update.EstimatedDelivery
		o.estimatedDelivery = &estimated
	}
	o.updatedAt = time.Now().UTC()
}
