package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler looks up orders by a free-text term across
// order number, customer name, phone number and address, with an optional
// phone filter narrowing the result further.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order search.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the search. Matches are case-insensitive substring
// matches, newest-first, capped at searchResultLimit.
func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	args := []any{}
	if text := query.Text(); text != "" {
		where = "(order_number ILIKE ? OR customer_name ILIKE ? OR phone_number ILIKE ? OR address ILIKE ?)"
		pattern := "%" + text + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if phone := query.Phone(); phone != "" {
		if where != "" {
			where += " AND "
		}
		where += "phone_number LIKE ?"
		args = append(args, "%"+phone+"%")
	}

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+orderViewColumns+" FROM orders WHERE "+where+
			" ORDER BY created_at DESC LIMIT ?",
		append(args, searchResultLimit)...,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
