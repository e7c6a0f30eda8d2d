package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrChangeMemberAddressCommandIsNotConstructed = errors.New(
	"ChangeMemberAddressCommand must be created via NewChangeMemberAddressCommand constructor",
)

// ChangeMemberAddressCommand represents a request to change a member's home address.
// Orders placed before the change keep their original delivery snapshot.
type ChangeMemberAddressCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewChangeMemberAddressCommand creates a command to change a member's address.
// Validates that member ID is valid and the address was built through its constructor.
func NewChangeMemberAddressCommand(
	memberID kernel.UUID, address kernel.Address,
) (ChangeMemberAddressCommand, error) {
	addressCommand := ChangeMemberAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setMemberID(memberID),
		addressCommand.setAddress(address),
	); err != nil {
		return ChangeMemberAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeMemberAddressCommandIsNotConstructed if validation fails.
func (c ChangeMemberAddressCommand) Validate() error {
	return c.guard.Validate(ErrChangeMemberAddressCommandIsNotConstructed)
}

// MemberID returns the identifier of the member to update.
func (c ChangeMemberAddressCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Address returns the member's new home address.
func (c ChangeMemberAddressCommand) Address() kernel.Address {
	return c.address
}

func (c *ChangeMemberAddressCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *ChangeMemberAddressCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
