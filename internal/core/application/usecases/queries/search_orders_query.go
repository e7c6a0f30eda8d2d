package queries

import (
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

// SearchOrdersQuery retrieves full order aggregates matching a search filter.
// Serves flows that need the complete order, delivery snapshot and lines
// included, such as the order management screen.
//
// Example:
//
//	filter, _ := order.NewSearchFilter("alice", nil, 0, 20)
//	query, _ := NewSearchOrdersQuery(filter)
//	handler := NewSearchOrdersQueryHandler(repo)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to search orders: %w", err)
//	}
type SearchOrdersQuery struct {
	filter order.SearchFilter

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a query from a constructed search filter.
func NewSearchOrdersQuery(filter order.SearchFilter) (SearchOrdersQuery, error) {
	if err := filter.Validate(); err != nil {
		return SearchOrdersQuery{}, err
	}

	return SearchOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchOrdersQueryIsNotConstructed if validation fails.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Filter returns the search filter.
func (q SearchOrdersQuery) Filter() order.SearchFilter {
	return q.filter
}
