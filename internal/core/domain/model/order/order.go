package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// LineRequest describes one requested position for order creation:
// a live catalog item and the quantity to order. The unit price is
// snapshotted from the item during creation.
type LineRequest struct {
	Item     *item.Item
	Quantity int
}

// Order is the aggregate root of the order lifecycle. It holds a member
// reference, an owned delivery snapshot, an owned collection of lines, a
// status, and the placement timestamp.
//
// Order maintains these invariants:
//   - Must have a valid identifier, member reference, delivery, and at
//     least one line
//   - Total price is always recomputed from the lines, never stored
//   - Status transitions Ordered -> Cancelled exactly once, irreversibly
//   - All consistency-sensitive mutations to owned parts flow through the
//     aggregate: stock commitment on creation, stock restoration on
//     cancellation
//
// The delivery and lines are exclusively owned: they are persisted and
// loaded only as part of the order, never addressed independently.
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// memberID references the ordering member
	memberID kernel.UUID

	// delivery is the owned address snapshot, 1:1 with the order
	delivery *Delivery

	// lines are the owned positions, at least one
	lines []*Line

	// status is the current lifecycle state
	status Status

	// orderDate is the placement timestamp
	orderDate time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder runs the order creation protocol.
//
// For each request it constructs a Line and decreases the requested item's
// stock — the single point where inventory is committed against this order.
// If any decrement fails the whole creation fails and the error (typically
// an item.InsufficientStockError) propagates to the caller. Decrements
// already applied to earlier items in the same call are not reverted: the
// mutated items are only in memory at this point and are discarded together
// with the unpersisted aggregate, so no partial effect ever reaches storage.
//
// On success the order is fully formed with status Ordered and the given
// placement time, ready for a transactional save.
func NewOrder(
	id kernel.UUID,
	memberID kernel.UUID,
	delivery *Delivery,
	requests []LineRequest,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status: Ordered,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setMemberID(memberID),
		o.setDelivery(delivery),
		o.setOrderDate(now),
	); err != nil {
		return nil, err
	}

	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	lines := make([]*Line, 0, len(requests))
	for _, req := range requests {
		if req.Item == nil {
			return nil, errs.NewValueIsRequiredError("line item")
		}
		line, err := NewLine(kernel.NewUUID(), req.Item, req.Item.Price(), req.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	o.lines = lines

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its owned delivery and lines. No stock adjustment happens on
// restore.
func RestoreOrder(
	id kernel.UUID,
	memberID kernel.UUID,
	delivery *Delivery,
	lines []*Line,
	status Status,
	orderDate time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setMemberID(memberID),
		o.setDelivery(delivery),
		o.setOrderDate(orderDate),
		o.setStatus(status),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MemberID returns the identifier of the ordering member.
func (o *Order) MemberID() kernel.UUID {
	return o.memberID
}

// Delivery returns the owned address snapshot.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Lines returns the owned order lines.
func (o *Order) Lines() []*Line {
	return o.lines
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the placement timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// TotalPrice returns the sum of unitPrice x quantity over all lines.
// The value is recomputed on every call and stays the same after
// cancellation.
func (o *Order) TotalPrice() int {
	total := 0
	for _, line := range o.lines {
		total += line.Total()
	}
	return total
}

// Cancel runs the cancellation protocol.
//
// The order must be in Ordered status; cancelling twice fails with
// ErrOrderAlreadyCancelled and must not restore stock again. For every
// owned line the referenced item's stock is increased by the line's
// quantity — a compensating action that trusts the supplied items map to
// hold the correct targets, keyed by item id. A line whose item is missing
// from the map fails the whole cancellation with an object-not-found error
// before the status flips.
func (o *Order) Cancel(items map[kernel.UUID]*item.Item) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	for _, line := range o.lines {
		it, ok := items[line.ItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("item", line.ItemID().String())
		}
		if err := it.IncreaseStock(line.Quantity()); err != nil {
			return err
		}
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	o.memberID = memberID
	return nil
}

func (o *Order) setDelivery(delivery *Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
