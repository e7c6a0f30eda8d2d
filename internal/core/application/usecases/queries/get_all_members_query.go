// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetAllMembersQueryIsNotConstructed = errors.New(
		"GetAllMembersQuery must be created via NewGetAllMembersQuery constructor",
	)
)

// GetAllMembersQuery retrieves information about all registered members.
//
// Example:
//
//	query := NewGetAllMembersQuery()
//	handler := NewGetAllMembersQueryHandler(db)
//
//	members, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve members: %w", err)
//	}
//
//	for _, m := range members {
//	    fmt.Printf("%s lives in %s\n", m.Name, m.City)
//	}
type GetAllMembersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMembersQuery creates a query to retrieve all members.
// This is a parameterless query that fetches the complete member list.
func NewGetAllMembersQuery() GetAllMembersQuery {
	return GetAllMembersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllMembersQueryIsNotConstructed if validation fails.
func (q GetAllMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMembersQueryIsNotConstructed)
}

// GetAllMembersQueryResponse represents member information in the read model.
type GetAllMembersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	City    string
	Street  string
	ZipCode string
}
