package queries

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// SearchOrdersQueryHandler answers order searches with full aggregates.
// Delegates to the order repository, which loads each matching order
// together with its delivery snapshot and lines. Heavier than the
// summary projection but returns orders ready for further domain use.
type SearchOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewSearchOrdersQueryHandler creates a handler for aggregate order searches.
// Requires an order repository bound to the main database connection.
func NewSearchOrdersQueryHandler(orderRepo ports.OrderRepository) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the search and returns matching order aggregates,
// newest first, windowed by the filter's offset and limit.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.FindBySearch(ctx, query.Filter())
}
