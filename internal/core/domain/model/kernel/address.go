package kernel

import (
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress to ensure
// validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object representing a postal address.
// It is held by a member and copied into a delivery snapshot when an order
// is placed, so later changes to the member's address never affect
// already-placed orders.
//
// Example:
//
//	addr, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "06000")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	city    string
	street  string
	zipCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified parts.
// All three parts must be non-empty.
func NewAddress(city, street, zipCode string) (Address, error) {
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if zipCode == "" {
		return Address{}, errs.NewValueIsRequiredError("zipCode")
	}

	return Address{
		city:    city,
		street:  street,
		zipCode: zipCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// City returns the city part of the address.
func (a Address) City() string {
	return a.city
}

// Street returns the street part of the address.
func (a Address) Street() string {
	return a.street
}

// ZipCode returns the zip code part of the address.
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEqual compares two addresses part by part.
func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.street == other.street && a.zipCode == other.zipCode
}

// String returns a single-line rendering of the address.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s (%s)", a.city, a.street, a.zipCode)
}

// Validate ensures the Address was created through NewAddress.
// Returns ErrAddressIsNotConstructed for a zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
