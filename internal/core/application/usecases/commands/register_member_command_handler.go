package commands

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"
)

// ErrDuplicateMemberName is returned when a member with the requested
// name already exists. Member names are unique across the whole registry.
var ErrDuplicateMemberName = member.ErrDuplicateName

// RegisterMemberCommandHandler handles the business logic for member registration.
// Enforces name uniqueness before creating the member aggregate.
//
// The pre-check and the insert run in one transaction, but two concurrent
// registrations can still pass the check with the same name. The unique
// index on members.name is the final arbiter; the repository translates
// its violation into ErrDuplicateMemberName as well.
//
// Example:
//
//	handler := NewRegisterMemberCommandHandler(uowFactory)
//	cmd, _ := NewRegisterMemberCommand(kernel.NewUUID(), "alice", address)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDuplicateMemberName) {
//	    log.Println("Name already taken")
//	}
type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewRegisterMemberCommandHandler creates a handler for member registration.
// Requires a MemberUoWFactory for transactional persistence.
func NewRegisterMemberCommandHandler(uowFactory MemberUoWFactory) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the member registration command.
// Rejects the registration with ErrDuplicateMemberName if another member
// already carries the requested name.
func (h RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
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

	_, err := memberRepo.GetByName(ctx, cmd.Name())
	if err == nil {
		return ErrDuplicateMemberName
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newMember, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	if err = memberRepo.Add(ctx, newMember); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
