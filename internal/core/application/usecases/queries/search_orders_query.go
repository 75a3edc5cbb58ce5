package queries

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// searchResultLimit caps how many matches a single search returns.
const searchResultLimit = 50

// ErrSearchOrdersQueryIsNotConstructed happens when SearchOrdersQuery is not created via constructor.
var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery is a query for free-text order lookup by number,
// customer name, address or phone number.
type SearchOrdersQuery struct {
	text  string
	phone string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates the search query. At least one of the
// text or the phone argument must be non-blank.
func NewSearchOrdersQuery(text string, phone string) (SearchOrdersQuery, error) {
	text = strings.TrimSpace(text)
	phone = strings.TrimSpace(phone)
	if text == "" && phone == "" {
		return SearchOrdersQuery{}, errs.NewValueIsRequiredError("query")
	}

	return SearchOrdersQuery{
		text:  text,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Text returns the free-text search term.
func (q SearchOrdersQuery) Text() string {
	return q.text
}

// Phone returns the phone number filter, if any.
func (q SearchOrdersQuery) Phone() string {
	return q.phone
}
