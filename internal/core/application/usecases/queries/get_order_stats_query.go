package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

// ErrGetOrderStatsQueryIsNotConstructed happens when GetOrderStatsQuery is not created via constructor.
var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery is a query for aggregate dashboard counters.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates the stats query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// OrderStatsResponse holds per-status counters, today's order count and
// revenue over delivered orders.
type OrderStatsResponse struct {
	Total     int64   `json:"total"`
	Pending   int64   `json:"pending"`
	Confirmed int64   `json:"confirmed"`
	Preparing int64   `json:"preparing"`
	OnTheWay  int64   `json:"onTheWay"`
	Delivered int64   `json:"delivered"`
	Cancelled int64   `json:"cancelled"`
	Today     int64   `json:"today"`
	Revenue   float64 `json:"revenue"`
}
