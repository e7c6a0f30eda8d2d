package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
		"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// GetLowStockItemsQuery retrieves catalog items whose stock has fallen
// below a threshold. Used by the periodic stock report and by operators
// deciding what to reorder.
type GetLowStockItemsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates a query for items with stock below threshold.
// The threshold must be positive.
func NewGetLowStockItemsQuery(threshold int) (GetLowStockItemsQuery, error) {
	if threshold <= 0 {
		return GetLowStockItemsQuery{}, ErrThresholdIsInvalid
	}

	return GetLowStockItemsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockItemsQueryIsNotConstructed if validation fails.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

// Threshold returns the stock level below which items are reported.
func (q GetLowStockItemsQuery) Threshold() int {
	return q.threshold
}

// GetLowStockItemsQueryResponse represents a low stock item in the read model.
type GetLowStockItemsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Stock int
}
