package commands

import (
	"context"
)

// UpdateItemCommandHandler handles the business logic for item updates.
// Loads the aggregate, applies the new values through its own validation
// and persists the result. Changing stock here is an administrative
// correction, not an order-driven adjustment.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for item update operations.
// Requires an ItemUoWFactory for transactional persistence.
func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item update command.
// Returns errs.ObjectNotFoundError if the item does not exist.
func (h UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	itemRepo := uow.ItemRepository()

	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Price(), cmd.Stock()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
