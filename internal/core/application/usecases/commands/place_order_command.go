package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderLineRequest names an item and the quantity to order.
// The unit price is not part of the request: it is snapshotted
// from the catalog at placement time.
type OrderLineRequest struct {
	ItemID   kernel.UUID
	Quantity int
}

// PlaceOrderCommand represents a request to place a new order.
// The delivery address is not part of the command: it is snapshotted
// from the member's current home address at placement time.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), memberID, []OrderLineRequest{
//	    {ItemID: bookID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	memberID kernel.UUID
	lines    []OrderLineRequest

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that order and member IDs are valid, at least one line is
// requested, and every line carries a valid item ID and a positive quantity.
func NewPlaceOrderCommand(
	orderID, memberID kernel.UUID, lines []OrderLineRequest,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setMemberID(memberID),
		orderCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MemberID returns the identifier of the ordering member.
func (c PlaceOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Lines returns the requested items and quantities.
func (c PlaceOrderCommand) Lines() []OrderLineRequest {
	return c.lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLineRequest) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}
