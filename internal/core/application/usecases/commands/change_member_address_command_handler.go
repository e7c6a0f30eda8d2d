package commands

import (
	"context"
)

// ChangeMemberAddressCommandHandler handles the business logic for address changes.
// Loads the member, applies the new address and persists the change in one transaction.
type ChangeMemberAddressCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewChangeMemberAddressCommandHandler creates a handler for address change operations.
// Requires a MemberUoWFactory for transactional persistence.
func NewChangeMemberAddressCommandHandler(uowFactory MemberUoWFactory) ChangeMemberAddressCommandHandler {
	return ChangeMemberAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address change command.
// Returns errs.ObjectNotFoundError if the member does not exist.
func (h ChangeMemberAddressCommandHandler) Handle(ctx context.Context, cmd ChangeMemberAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()

	aggregate, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeAddress(cmd.Address()); err != nil {
		return err
	}

	if err = memberRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
