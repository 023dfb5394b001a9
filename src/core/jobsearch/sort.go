package jobsearch

import "strings"

// DefaultSortField orders search results by posting date when the caller
// supplies no sort or an unknown field.
const DefaultSortField = "posted_date"

// Order is a resolved sort: a whitelisted field name plus direction.
// Only fields in sortableFields ever reach the repository, so the column
// name can never be attacker-controlled.
type Order struct {
	Field string
	Desc  bool
}

var sortableFields = map[string]struct{}{
	"id":            {},
	"posted_date":   {},
	"scraped_at":    {},
	"title":         {},
	"company":       {},
	"location":      {},
	"contract_type": {},
}

// ParseSort resolves a caller-supplied sort expression ("-posted_date",
// "title", ...) to an Order. A leading "-" selects descending order.
// Unknown fields keep the requested direction but fall back to
// DefaultSortField. The empty string means "-posted_date".
func ParseSort(sort string) Order {
	if sort == "" {
		return Order{Field: DefaultSortField, Desc: true}
	}

	desc := false
	field := sort
	if strings.HasPrefix(sort, "-") {
		desc = true
		field = sort[1:]
	}

	if _, ok := sortableFields[field]; !ok {
		field = DefaultSortField
	}

	return Order{Field: field, Desc: desc}
}
