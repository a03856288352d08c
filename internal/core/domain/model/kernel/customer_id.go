package kernel

import (
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrCustomerIDIsNotConstructed indicates that a CustomerID was not created
// through NewCustomerID.
var ErrCustomerIDIsNotConstructed = errs.NewValueIsRequiredError(
	"CustomerID must be created via NewCustomerID")

// CustomerID is a value object wrapping the short alphanumeric account codes
// the customer directory uses as keys (for example "2COM").
type CustomerID struct {
	value string
	guard guard.ConstructorGuard
}

// NewCustomerID creates a CustomerID from an account code.
// The code must not be empty.
func NewCustomerID(value string) (CustomerID, error) {
	if value == "" {
		return CustomerID{}, errs.NewValueIsRequiredError("customerId")
	}

	return CustomerID{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CustomerID was created via NewCustomerID.
func (id CustomerID) Validate() error {
	return id.guard.Validate(ErrCustomerIDIsNotConstructed)
}

// String returns the account code.
func (id CustomerID) String() string {
	return id.value
}

// IsEqual compares two customer IDs by value.
func (id CustomerID) IsEqual(other CustomerID) bool {
	return id.value == other.value
}
