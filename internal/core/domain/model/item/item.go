package item

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory functions.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrInsufficientStock is the sentinel for stock decrements that would
	// drive the stock count negative. Use errors.Is to classify; the concrete
	// InsufficientStockError carries the requested and available quantities.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a rejected stock decrement.
// The decrement is all-or-nothing: when this error is returned the stock
// count is left unchanged.
type InsufficientStockError struct {
	ItemID    kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// item, requested quantity, and remaining stock.
func NewInsufficientStockError(itemID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ItemID: itemID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: item %s has %d in stock, %d requested",
		ErrInsufficientStock, e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Item represents a catalog entry with finite stock. It is an aggregate root
// holding the item's identity, variant kind, display name, unit price, and
// available stock count.
//
// Item maintains these invariants:
//   - Must have a valid unique identifier and a known kind
//   - Name must be non-empty
//   - Price is never negative
//   - Stock is never negative; a decrement that would go below zero is
//     rejected whole, leaving stock unchanged
//
// Stock adjustments happen only through DecreaseStock and IncreaseStock,
// which the order aggregate drives during order creation and cancellation.
type Item struct {
	// id is the unique identifier of the catalog entry
	id kernel.UUID
	// kind tags the catalog variant (book, album, movie)
	kind Kind
	// name is the display name shown in summaries
	name string
	// price is the current unit price; order lines snapshot it at order time
	price int
	// stock is the available quantity, never negative
	stock int
	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates a new catalog Item with validation. This is the only way
// (besides RestoreItem) to create a valid Item.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - kind: catalog variant (must be a known Kind)
//   - name: display name (must be non-empty)
//   - price: unit price (must be >= 0)
//   - stock: initial stock count (must be >= 0)
func NewItem(id kernel.UUID, kind Kind, name string, price, stock int) (*Item, error) {
	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setKind(kind),
		it.setName(name),
		it.setPrice(price),
		it.setStock(stock),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem reconstructs an Item aggregate from persistent storage.
// The restored item behaves identically to one created through NewItem.
func RestoreItem(id kernel.UUID, kind Kind, name string, price, stock int) (*Item, error) {
	return NewItem(id, kind, name, price, stock)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Kind returns the item's catalog variant.
func (i *Item) Kind() Kind {
	return i.kind
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's current unit price.
func (i *Item) Price() int {
	return i.price
}

// Stock returns the item's available quantity.
func (i *Item) Stock() int {
	return i.stock
}

// DecreaseStock reduces the available stock by quantity.
//
// The decrement is all-or-nothing: if the quantity exceeds the available
// stock, an InsufficientStockError is returned and the stock count is left
// unchanged. A negative quantity is rejected as invalid.
//
// This is the single point where inventory is committed against an order.
func (i *Item) DecreaseStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	if i.stock-quantity < 0 {
		return NewInsufficientStockError(i.id, quantity, i.stock)
	}

	i.stock -= quantity
	return nil
}

// IncreaseStock raises the available stock by quantity.
// Used as the compensating action when an order is cancelled; no upper
// bound is enforced. A negative quantity is rejected as invalid.
func (i *Item) IncreaseStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	i.stock += quantity
	return nil
}

// Update overwrites the item's name, price, and stock in one administrative
// operation. Each field is validated on its own; there is no cross-field
// validation.
func (i *Item) Update(name string, price, stock int) error {
	return errors.Join(
		i.setName(name),
		i.setPrice(price),
		i.setStock(stock),
	)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}
