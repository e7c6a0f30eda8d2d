// Package member provides the customer aggregate for the shop.
//
// A member holds identity, a registration name, and a postal address. Names
// are unique across members: the registration use case performs a lookup
// check, and the persistence layer backs it with a unique index since the
// check alone cannot win a concurrent-registration race.
package member

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrMemberIsNotConstructed is returned when a Member instance was not
// created through the NewMember or RestoreMember factory functions.
var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember or RestoreMember constructor")

// ErrDuplicateName is returned when a member with the requested name
// already exists. Raised by the registration pre-check and by the storage
// layer when its unique index catches a concurrent registration.
var ErrDuplicateName = errors.New("member name is already taken")

// Member represents a registered customer. It is an aggregate root holding
// the member's identity, name, and address.
//
// The address may change after registration; orders snapshot it into their
// delivery at placement time, so address changes never affect past orders.
type Member struct {
	// id is the unique identifier of the member
	id kernel.UUID
	// name is the registration name, unique across members
	name string
	// address is the member's current postal address
	address kernel.Address
	// guard ensures the member was created via a constructor
	guard guard.ConstructorGuard
}

// NewMember creates a new Member with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: registration name (must be non-empty; uniqueness is enforced
//     by the registration use case and the storage layer)
//   - address: postal address (must be a constructed Address)
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	m := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setAddress(address),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember reconstructs a Member aggregate from persistent storage.
func RestoreMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	return NewMember(id, name, address)
}

// Validate ensures the Member instance was properly constructed.
func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// IsEqual compares two members by their unique identifiers.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's registration name.
func (m *Member) Name() string {
	return m.name
}

// Address returns the member's current postal address.
func (m *Member) Address() kernel.Address {
	return m.address
}

// ChangeAddress replaces the member's address.
// Already-placed orders keep their delivery snapshot and are unaffected.
func (m *Member) ChangeAddress(address kernel.Address) error {
	return m.setAddress(address)
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
