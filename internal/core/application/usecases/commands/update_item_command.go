package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to change a catalog item's
// name, price and stock level. The item's kind is fixed at creation.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	name   string
	price  int
	stock  int

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update a catalog item.
// Validates that item ID is valid, name is not empty,
// and price and stock are not negative.
func NewUpdateItemCommand(itemID kernel.UUID, name string, price, stock int) (UpdateItemCommand, error) {
	itemCommand := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setStock(stock),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateItemCommandIsNotConstructed if validation fails.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item's new display name.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Price returns the item's new unit price.
func (c UpdateItemCommand) Price() int {
	return c.price
}

// Stock returns the item's new stock quantity.
func (c UpdateItemCommand) Stock() int {
	return c.stock
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateItemCommand) setPrice(price int) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *UpdateItemCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
