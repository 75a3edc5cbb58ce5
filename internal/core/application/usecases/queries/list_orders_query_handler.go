package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order pages from the database,
// newest-first by creation time.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Total pages are computed by ceiling
// division over the matching count.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	where := ""
	args := []any{}
	if status := query.Status(); status != "" && status != StatusFilterAll {
		where = "WHERE status = ?"
		args = append(args, status)
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+orderViewColumns+" FROM orders "+where+
			" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		append(args, query.PageSize(), offset)...,
	).Rows()
	if err != nil {
		return ListOrdersResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return ListOrdersResponse{}, err
	}

	totalPages := int((total + int64(query.PageSize()) - 1) / int64(query.PageSize()))

	return ListOrdersResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:       query.Page(),
			TotalPages: totalPages,
			Total:      total,
		},
	}, nil
}
