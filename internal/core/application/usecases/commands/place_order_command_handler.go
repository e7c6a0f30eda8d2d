package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler orchestrates order placement.
// Snapshots the member's current address into the delivery, snapshots
// each item's current price into the lines, and decreases item stock.
// The order and every touched item are persisted in a single transaction,
// so a failed line (for example insufficient stock) leaves nothing behind.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	var stockErr *item.InsufficientStockError
//	if errors.As(err, &stockErr) {
//	    log.Printf("only %d left of %s", stockErr.Available, stockErr.ItemID)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Loads the ordering member and every requested item, builds the order
// aggregate (which decreases the items' stock), then saves the order and
// the mutated items within one transaction.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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
	itemRepo := uow.ItemRepository()
	orderRepo := uow.OrderRepository()

	orderingMember, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), orderingMember.Address())
	if err != nil {
		return err
	}

	// One loaded instance per item: lines requesting the same item must
	// decrement the same copy, or the stock check sees stale values.
	items := make(map[kernel.UUID]*item.Item)
	requests := make([]order.LineRequest, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		orderedItem, ok := items[line.ItemID]
		if !ok {
			loaded, err := itemRepo.Get(ctx, line.ItemID)
			if err != nil {
				return err
			}
			items[line.ItemID] = loaded
			orderedItem = loaded
		}
		requests = append(requests, order.LineRequest{Item: orderedItem, Quantity: line.Quantity})
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.MemberID(), delivery, requests, time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	for _, touched := range items {
		if err = itemRepo.Update(ctx, touched); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
