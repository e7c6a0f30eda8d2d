package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the address snapshot attached 1:1 to an order.
// The address is copied from the member at order time and never changes
// afterwards; its lifetime is bound to the owning order.
type Delivery struct {
	// id is the unique identifier of the delivery record
	id kernel.UUID
	// address is the destination, frozen at order time
	address kernel.Address
	// guard ensures the delivery was created via a constructor
	guard guard.ConstructorGuard
}

// NewDelivery creates the delivery snapshot for a new order.
// The address is typically the ordering member's address at placement time.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setAddress(address),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	return NewDelivery(id, address)
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Address returns the frozen destination address.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}
