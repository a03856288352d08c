package kernel

import (
	"fmt"
	"strconv"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrIDIsNotConstructed indicates that an ID was not created through NewID.
// The zero value of ID is invalid; entities that have not been persisted yet
// carry a zero ID until the repository assigns the generated key.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object wrapping the integer keys the transactional store
// generates for orders, order lines and products. A valid ID is always
// positive; the zero value fails validation.
//
// Example:
//
//	orderID, err := kernel.NewID(99998)
//	if err != nil {
//	    // handle invalid key
//	}
//	fmt.Println(orderID) // "99998"
type ID struct {
	value int
	guard guard.ConstructorGuard
}

// NewID creates an ID from a store key. The value must be positive.
func NewID(value int) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", value))
	}

	return ID{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the ID was created via NewID.
func (id ID) Validate() error {
	return id.guard.Validate(ErrIDIsNotConstructed)
}

// Value returns the underlying integer key.
func (id ID) Value() int {
	return id.value
}

// String returns the decimal representation of the key.
func (id ID) String() string {
	return strconv.Itoa(id.value)
}

// IsEqual compares two IDs by value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}
