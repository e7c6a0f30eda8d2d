package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var (
	ErrSearchOrderSummariesQueryIsNotConstructed = errors.New(
		"SearchOrderSummariesQuery must be created via NewSearchOrderSummariesQuery constructor",
	)
)

// SearchOrderSummariesQuery retrieves flat order read models matching a
// search filter. Built for listing screens: cheaper than loading full
// aggregates, and immune to the row explosion a single joined query
// over orders and lines would produce.
type SearchOrderSummariesQuery struct {
	filter order.SearchFilter

	guard guard.ConstructorGuard
}

// NewSearchOrderSummariesQuery creates a query from a constructed search filter.
func NewSearchOrderSummariesQuery(filter order.SearchFilter) (SearchOrderSummariesQuery, error) {
	if err := filter.Validate(); err != nil {
		return SearchOrderSummariesQuery{}, err
	}

	return SearchOrderSummariesQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchOrderSummariesQueryIsNotConstructed if validation fails.
func (q SearchOrderSummariesQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrderSummariesQueryIsNotConstructed)
}

// Filter returns the search filter.
func (q SearchOrderSummariesQuery) Filter() order.SearchFilter {
	return q.filter
}

// OrderLineSummary represents one line of an order in the read model.
// The item name reflects the catalog at read time; unit price is the
// snapshot taken when the order was placed.
type OrderLineSummary struct {
	ItemName  string
	UnitPrice int
	Quantity  int
}

// SearchOrderSummariesQueryResponse represents an order in the read model.
type SearchOrderSummariesQueryResponse struct {
	ID         kernel.UUID
	MemberName string
	Status     string
	OrderDate  time.Time
	City       string
	Street     string
	ZipCode    string
	TotalPrice int
	Lines      []OrderLineSummary
}
