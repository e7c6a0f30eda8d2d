// Package ports defines repository interfaces for the shop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for member aggregates.
type MemberRepository interface {
	// Add persists a new member aggregate to storage.
	// Returns an error if a member with the same name already exists.
	Add(ctx context.Context, aggregate *member.Member) error

	// Update persists changes to an existing member aggregate.
	// The member must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)

	// GetByName retrieves a member aggregate by its unique name.
	// Returns errs.ObjectNotFoundError if no member carries the name.
	GetByName(ctx context.Context, name string) (*member.Member, error)

	// GetAll retrieves all registered members.
	GetAll(ctx context.Context) ([]*member.Member, error)
}
