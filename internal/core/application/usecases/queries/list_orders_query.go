package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

// StatusFilterAll is the sentinel status filter that bypasses filtering.
const StatusFilterAll = "all"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of orders, newest first, optionally
// filtered by exact status.
type ListOrdersQuery struct {
	status   string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paged listing query. An empty status or the
// "all" sentinel disables the filter; any other value must belong to the
// status enumeration. Page and pageSize are clamped to sane bounds.
func NewListOrdersQuery(status string, page, pageSize int) (ListOrdersQuery, error) {
	if status != "" && status != StatusFilterAll {
		if _, err := order.ParseStatus(status); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return ListOrdersQuery{
		status:   status,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the raw status filter ("" or "all" means no filter).
func (q ListOrdersQuery) Status() string {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// Pagination describes the position of a page within the matching set.
type Pagination struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Total      int64 `json:"total"`
}

// ListOrdersResponse is a page of orders plus its pagination descriptor.
type ListOrdersResponse struct {
	Orders     []OrderView `json:"orders"`
	Pagination Pagination  `json:"pagination"`
}
