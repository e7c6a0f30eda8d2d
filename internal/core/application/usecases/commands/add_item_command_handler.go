package commands

import (
	"context"

	"shop/internal/core/domain/model/item"
)

// AddItemCommandHandler handles the business logic for adding catalog items.
type AddItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewAddItemCommandHandler creates a handler for item creation operations.
// Requires an ItemUoWFactory for transactional persistence.
func NewAddItemCommandHandler(uowFactory ItemUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item creation command.
// Uses transaction to ensure the item is properly persisted or rolled back on error.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	aggregate, err := item.NewItem(cmd.ItemID(), cmd.Kind(), cmd.Name(), cmd.Price(), cmd.Stock())
	if err != nil {
		return err
	}

	if err = itemRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
