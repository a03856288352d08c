package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrAddressIsNotConstructed indicates that an Address was not created
// through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address value object. Orders snapshot the
// customer's address at creation time, so later changes to the customer
// never affect past orders.
//
// Example:
//
//	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(addr.City()) // "Berlin"
type Address struct {
	street     string
	city       string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address. Street and city are required;
// the postal code may be empty.
func NewAddress(street string, city string, postalCode string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street:     street,
		city:       city,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code of the address, possibly empty.
func (a Address) PostalCode() string {
	return a.postalCode
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.postalCode == other.postalCode
}

// String returns a single-line rendering of the address.
func (a Address) String() string {
	if a.postalCode == "" {
		return fmt.Sprintf("%s, %s", a.street, a.city)
	}
	return fmt.Sprintf("%s, %s %s", a.street, a.postalCode, a.city)
}
