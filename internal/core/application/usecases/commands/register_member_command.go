package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrRegisterMemberCommandIsNotConstructed = errors.New(
		"RegisterMemberCommand must be created via NewRegisterMemberCommand constructor",
	)
	ErrMemberNameIsRequired = errors.New("member name is required")
)

// RegisterMemberCommand represents a request to register a new member.
// Encapsulates the member's unique name and home address.
//
// Example:
//
//	memberID := kernel.NewUUID()
//	address, _ := kernel.NewAddress("Seoul", "Main Street 1", "04524")
//	cmd, err := NewRegisterMemberCommand(memberID, "alice", address)
//	if err != nil {
//	    return fmt.Errorf("invalid member data: %w", err)
//	}
//
//	handler := NewRegisterMemberCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register member: %w", err)
//	}
type RegisterMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewRegisterMemberCommand creates a command to register a new member.
// Validates that member ID is valid, name is not empty, and the address
// was built through its constructor. Returns an error if any validation fails.
func NewRegisterMemberCommand(
	memberID kernel.UUID, name string, address kernel.Address,
) (RegisterMemberCommand, error) {
	memberCommand := RegisterMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		memberCommand.setMemberID(memberID),
		memberCommand.setName(name),
		memberCommand.setAddress(address),
	); err != nil {
		return RegisterMemberCommand{}, err
	}

	return memberCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterMemberCommandIsNotConstructed if validation fails.
func (c RegisterMemberCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMemberCommandIsNotConstructed)
}

// MemberID returns the unique identifier for the new member.
func (c RegisterMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Name returns the member's unique display name.
func (c RegisterMemberCommand) Name() string {
	return c.name
}

// Address returns the member's home address.
func (c RegisterMemberCommand) Address() kernel.Address {
	return c.address
}

func (c *RegisterMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *RegisterMemberCommand) setName(name string) error {
	if name == "" {
		return ErrMemberNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterMemberCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
