package notify

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderPayload is the wire shape of a full order in broadcast events and
// HTTP responses.
type OrderPayload struct {
	ID                string           `json:"id"`
	OrderNumber       string           `json:"orderNumber"`
	CustomerName      string           `json:"customerName"`
	PhoneNumber       string           `json:"phoneNumber"`
	Address           string           `json:"address"`
	Location          *order.Location  `json:"location,omitempty"`
	Items             []ItemPayload    `json:"items"`
	TotalAmount       float64          `json:"totalAmount"`
	PaymentMethod     string           `json:"paymentMethod"`
	Status            string           `json:"status"`
	Notes             string           `json:"notes,omitempty"`
	AssignedDriver    string           `json:"assignedDriver,omitempty"`
	EstimatedDelivery *time.Time       `json:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// ItemPayload is the wire shape of one line item.
type ItemPayload struct {
	Name      string  `json:"name"`
	ProductID string  `json:"productId,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// NewOrderPayload maps an order aggregate to its wire shape.
func NewOrderPayload(aggregate *order.Order) OrderPayload {
	items := make([]ItemPayload, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemPayload{
			Name:      item.Name,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	return OrderPayload{
		ID:                aggregate.ID().String(),
		OrderNumber:       aggregate.Number().String(),
		CustomerName:      aggregate.CustomerName(),
		PhoneNumber:       aggregate.PhoneNumber(),
		Address:           aggregate.Address(),
		Location:          aggregate.Location(),
		Items:             items,
		TotalAmount:       aggregate.TotalAmount(),
		PaymentMethod:     aggregate.PaymentMethod().String(),
		Status:            aggregate.Status().String(),
		Notes:             aggregate.Notes(),
		AssignedDriver:    aggregate.AssignedDriver(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// Publisher pushes order lifecycle events to the dashboard group.
// It implements ports.OrderEventPublisher.
type Publisher struct {
	hub *Hub
}

// NewPublisher creates a publisher bound to the given hub.
func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

// OrderCreated broadcasts the full order to the dashboard group.
func (p *Publisher) OrderCreated(aggregate *order.Order) {
	p.hub.Publish(DashboardGroup, Event{
		Kind: EventCreated,
		Data: NewOrderPayload(aggregate),
	})
}

// OrderUpdated broadcasts the full updated order to the dashboard group.
func (p *Publisher) OrderUpdated(aggregate *order.Order) {
	p.hub.Publish(DashboardGroup, Event{
		Kind: EventUpdated,
		Data: NewOrderPayload(aggregate),
	})
}

// OrderDeleted broadcasts only the removed order's identifier.
func (p *Publisher) OrderDeleted(id kernel.UUID) {
	p.hub.Publish(DashboardGroup, Event{
		Kind: EventDeleted,
		Data: map[string]string{"id": id.String()},
	})
}
