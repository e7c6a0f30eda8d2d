package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetAllItemsQueryIsNotConstructed = errors.New(
		"GetAllItemsQuery must be created via NewGetAllItemsQuery constructor",
	)
)

// GetAllItemsQuery retrieves information about all catalog items.
//
// Example:
//
//	query := NewGetAllItemsQuery()
//	handler := NewGetAllItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve items: %w", err)
//	}
//
//	for _, it := range items {
//	    fmt.Printf("%s: %d in stock\n", it.Name, it.Stock)
//	}
type GetAllItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllItemsQuery creates a query to retrieve all catalog items.
// This is a parameterless query that fetches the complete catalog.
func NewGetAllItemsQuery() GetAllItemsQuery {
	return GetAllItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllItemsQueryIsNotConstructed if validation fails.
func (q GetAllItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllItemsQueryIsNotConstructed)
}

// GetAllItemsQueryResponse represents catalog item information in the read model.
type GetAllItemsQueryResponse struct {
	ID    kernel.UUID
	Kind  string
	Name  string
	Price int
	Stock int
}
