package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and searching order entities
// with their delivery snapshot and lines.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its delivery snapshot and all lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindBySearch retrieves full order aggregates matching the filter.
	// Orders are returned newest first, windowed by the filter's
	// offset and limit. The member name filter is a case-sensitive
	// substring match.
	FindBySearch(ctx context.Context, filter order.SearchFilter) ([]*order.Order, error)
}
