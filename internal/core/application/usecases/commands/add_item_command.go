package commands

import (
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrPriceIsInvalid     = errors.New("price must not be negative")
	ErrStockIsInvalid     = errors.New("stock must not be negative")
)

// AddItemCommand represents a request to add a new item to the catalog.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewAddItemCommand(itemID, item.Book, "Effective Go", 25000, 100)
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	kind   item.Kind
	name   string
	price  int
	stock  int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a catalog item.
// Validates that item ID and kind are valid, name is not empty,
// and price and stock are not negative.
func NewAddItemCommand(
	itemID kernel.UUID, kind item.Kind, name string, price, stock int,
) (AddItemCommand, error) {
	itemCommand := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setKind(kind),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setStock(stock),
	); err != nil {
		return AddItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Kind returns the catalog category of the item.
func (c AddItemCommand) Kind() item.Kind {
	return c.kind
}

// Name returns the item's display name.
func (c AddItemCommand) Name() string {
	return c.name
}

// Price returns the item's unit price.
func (c AddItemCommand) Price() int {
	return c.price
}

// Stock returns the item's initial stock quantity.
func (c AddItemCommand) Stock() int {
	return c.stock
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setKind(kind item.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddItemCommand) setPrice(price int) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *AddItemCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
