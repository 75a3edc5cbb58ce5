package order

// Item is a single line item on an order. Items are immutable from the
// customer's perspective once the order is created.
type Item struct {
	// Name is the display name of the product. Always populated after
	// normalization.
	Name string

	// ProductID optionally references the catalog entry the item came from.
	ProductID string

	// Quantity is the ordered count, at least 1.
	Quantity int

	// Price is the unit price, never negative.
	Price float64

	// Image optionally carries a product image URI for the dashboard.
	Image string
}

// Location holds optional geocoordinates for the delivery destination plus
// a human-readable fallback address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}
