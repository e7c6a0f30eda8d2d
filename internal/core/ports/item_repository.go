package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog item aggregates.
// Provides methods for storing, retrieving, and querying items together
// with their current stock level.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item aggregate.
	// The item must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetAll retrieves all catalog items.
	GetAll(ctx context.Context) ([]*item.Item, error)
}
