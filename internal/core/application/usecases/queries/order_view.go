// Package queries contains read-only projections over the order store.
// Query handlers read the database directly and return flat response
// structs; they never mutate state and bypass the broadcaster entirely.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"
)

// ItemView is a line item as projected to callers. The JSON tags match the
// persisted jsonb representation.
type ItemView struct {
	Name      string  `json:"name"`
	ProductID string  `json:"productId,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// LocationView carries the optional delivery geocoordinates.
type LocationView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// OrderView is the full order record as projected to office callers.
type OrderView struct {
	ID                string        `json:"id"`
	OrderNumber       string        `json:"orderNumber"`
	CustomerName      string        `json:"customerName"`
	PhoneNumber       string        `json:"phoneNumber"`
	Address           string        `json:"address"`
	Location          *LocationView `json:"location,omitempty"`
	Items             []ItemView    `json:"items"`
	TotalAmount       float64       `json:"totalAmount"`
	PaymentMethod     string        `json:"paymentMethod"`
	Status            string        `json:"status"`
	Notes             string        `json:"notes,omitempty"`
	AssignedDriver    string        `json:"assignedDriver,omitempty"`
	EstimatedDelivery *time.Time    `json:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// orderViewColumns is the column list every projection selects, in the
// order scanOrderRows expects.
const orderViewColumns = `
	id,
	order_number,
	customer_name,
	phone_number,
	address,
	location_latitude,
	location_longitude,
	location_address,
	items,
	total_amount,
	payment_method,
	status,
	notes,
	assigned_driver,
	estimated_delivery,
	created_at,
	updated_at
`

func scanOrderRows(rows *sql.Rows) ([]OrderView, error) {
	orders := make([]OrderView, 0)

	for rows.Next() {
		var (
			view              OrderView
			latitude          *float64
			longitude         *float64
			locationAddress   sql.NullString
			rawItems          []byte
			estimatedDelivery sql.NullTime
		)

		if err := rows.Scan(
			&view.ID,
			&view.OrderNumber,
			&view.CustomerName,
			&view.PhoneNumber,
			&view.Address,
			&latitude,
			&longitude,
			&locationAddress,
			&rawItems,
			&view.TotalAmount,
			&view.PaymentMethod,
			&view.Status,
			&view.Notes,
			&view.AssignedDriver,
			&estimatedDelivery,
			&view.CreatedAt,
			&view.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if latitude != nil && longitude != nil {
			view.Location = &LocationView{
				Latitude:  *latitude,
				Longitude: *longitude,
				Address:   locationAddress.String,
			}
		}
		if estimatedDelivery.Valid {
			estimated := estimatedDelivery.Time
			view.EstimatedDelivery = &estimated
		}
		if len(rawItems) > 0 {
			if err := json.Unmarshal(rawItems, &view.Items); err != nil {
				return nil, err
			}
		}

		orders = append(orders, view)
	}

	return orders, rows.Err()
}
