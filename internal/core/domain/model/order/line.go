package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine or RestoreLine factory functions.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is a priced quantity of one catalog item, captured at order time.
// The unit price is a snapshot copied from the item when the order is
// placed; later catalog price changes do not affect the line. Quantity is
// fixed after creation — lines are only read afterwards, to drive the
// compensating stock restoration on cancellation.
type Line struct {
	// id is the unique identifier of the line
	id kernel.UUID
	// itemID references the catalog item the line was priced from
	itemID kernel.UUID
	// unitPrice is the item's price at order time
	unitPrice int
	// quantity is the ordered amount, at least 1
	quantity int
	// guard ensures the line was created via a constructor
	guard guard.ConstructorGuard
}

// NewLine constructs an order line against a live catalog item and commits
// stock for it: the item's stock is decreased by quantity as part of
// construction. This is the single point where inventory is committed
// against an order.
//
// If the decrement fails, the line is not created and the item's stock is
// left unchanged.
func NewLine(id kernel.UUID, it *item.Item, unitPrice, quantity int) (*Line, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}

	l := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setItemID(it.ID()),
		l.setUnitPrice(unitPrice),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if err := it.DecreaseStock(quantity); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine reconstructs a Line from persistent storage.
// No stock adjustment happens on restore.
func RestoreLine(id, itemID kernel.UUID, unitPrice, quantity int) (*Line, error) {
	l := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setItemID(itemID),
		l.setUnitPrice(unitPrice),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ItemID returns the identifier of the referenced catalog item.
func (l *Line) ItemID() kernel.UUID {
	return l.itemID
}

// UnitPrice returns the price snapshot captured at order time.
func (l *Line) UnitPrice() int {
	return l.unitPrice
}

// Quantity returns the ordered amount.
func (l *Line) Quantity() int {
	return l.quantity
}

// Total returns unitPrice multiplied by quantity.
func (l *Line) Total() int {
	return l.unitPrice * l.quantity
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *Line) setUnitPrice(unitPrice int) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
