package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"orderdesk/internal/core/domain/model/order"
)

// GetOrderStatsQueryHandler computes dashboard counters over the orders table.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for the stats query.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the aggregation. "Today" is counted from local midnight,
// revenue sums total_amount over delivered orders only.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsResponse{}, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := h.db.WithContext(ctx).
		Raw("SELECT status, COUNT(*) AS count FROM orders GROUP BY status").
		Scan(&counts).Error; err != nil {
		return OrderStatsResponse{}, err
	}

	response := OrderStatsResponse{}
	for _, c := range counts {
		response.Total += c.Count
		switch order.Status(c.Status) {
		case order.StatusPending:
			response.Pending = c.Count
		case order.StatusConfirmed:
			response.Confirmed = c.Count
		case order.StatusPreparing:
			response.Preparing = c.Count
		case order.StatusOnTheWay:
			response.OnTheWay = c.Count
		case order.StatusDelivered:
			response.Delivered = c.Count
		case order.StatusCancelled:
			response.Cancelled = c.Count
		}
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE created_at >= ?", midnight).
		Scan(&response.Today).Error; err != nil {
		return OrderStatsResponse{}, err
	}

	if err := h.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = ?",
			order.StatusDelivered.String()).
		Scan(&response.Revenue).Error; err != nil {
		return OrderStatsResponse{}, err
	}

	return response, nil
}
