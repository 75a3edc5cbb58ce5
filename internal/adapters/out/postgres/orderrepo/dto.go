// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It converts between the order domain aggregate and its
// relational representation, keeping GORM concerns out of the domain layer.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order aggregate. Line items
// are stored denormalized as a jsonb column since they are immutable after
// submission and always read together with the order. The order number
// carries a unique index; insert conflicts on it surface as uniqueness
// errors so the caller can regenerate and retry.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber       string     `gorm:"uniqueIndex"`
	CustomerName      string     `gorm:"not null"`
	PhoneNumber       string     `gorm:"not null"`
	Address           string     `gorm:"not null"`
	LocationLatitude  *float64   `gorm:"type:double precision"`
	LocationLongitude *float64   `gorm:"type:double precision"`
	LocationAddress   string
	Items             []ItemDTO  `gorm:"type:jsonb;serializer:json"`
	TotalAmount       float64    `gorm:"not null"`
	PaymentMethod     string     `gorm:"not null"`
	Status            string     `gorm:"index;not null"`
	Notes             string
	AssignedDriver    string
	EstimatedDelivery *time.Time
	CreatedAt         time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb shape of a single line item.
type ItemDTO struct {
	Name      string  `json:"name"`
	ProductID string  `json:"productId,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:      item.Name,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	dto := OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderNumber:       aggregate.Number().String(),
		CustomerName:      aggregate.CustomerName(),
		PhoneNumber:       aggregate.PhoneNumber(),
		Address:           aggregate.Address(),
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

	if loc := aggregate.Location(); loc != nil {
		lat, lng := loc.Latitude, loc.Longitude
		dto.LocationLatitude = &lat
		dto.LocationLongitude = &lng
		dto.LocationAddress = loc.Address
	}

	return dto
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, which re-validates the persisted state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *order.Location
	if dto.LocationLatitude != nil && dto.LocationLongitude != nil {
		location = &order.Location{
			Latitude:  *dto.LocationLatitude,
			Longitude: *dto.LocationLongitude,
			Address:   dto.LocationAddress,
		}
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{
			Name:      item.Name,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                id,
		Number:            order.OrderNumber(dto.OrderNumber),
		CustomerName:      dto.CustomerName,
		PhoneNumber:       dto.PhoneNumber,
		Address:           dto.Address,
		Location:          location,
		Items:             items,
		TotalAmount:       dto.TotalAmount,
		PaymentMethod:     order.PaymentMethod(dto.PaymentMethod),
		Status:            order.Status(dto.Status),
		Notes:             dto.Notes,
		AssignedDriver:    dto.AssignedDriver,
		EstimatedDelivery: dto.EstimatedDelivery,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	})
}
