package commands

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// CancelOrderCommandHandler orchestrates order cancellation.
// Returns every line's quantity to the item's stock and flips the order
// to cancelled. Order and items are persisted in a single transaction.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderAlreadyCancelled) {
//	    log.Println("Order was already cancelled")
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires an OrderUoWFactory for coordinating transactional updates across repositories.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// Loads the order and every item it references, lets the aggregate restore
// the stock, then saves the order and the mutated items within one
// transaction. Cancelling an already cancelled order fails with
// order.ErrOrderAlreadyCancelled and changes nothing.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	items := make(map[kernel.UUID]*item.Item, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		orderedItem, err := itemRepo.Get(ctx, line.ItemID())
		if err != nil {
			return err
		}
		items[orderedItem.ID()] = orderedItem
	}

	if err = aggregate.Cancel(items); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	for _, restoredItem := range items {
		if err = itemRepo.Update(ctx, restoredItem); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
