// Package line contains the OrderLine entity.
//
// A line belongs to exactly one order and references exactly one product by
// its catalog key. Lines may only be created while the owning order is
// unshipped; the owning aggregate enforces that rule, the line itself only
// guards its own attributes.
package line

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine or RestoreLine factory methods.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

	// ErrLineAlreadyIdentified is returned when trying to assign a generated
	// key to a line that already has one.
	ErrLineAlreadyIdentified = errs.NewInvalidStateError("line already has a generated key")
)

// Line is a single order line: a quantity of one product on one order.
// Its key is generated by the store on insert.
type Line struct {
	// id is the store-generated line key, zero until persisted
	id kernel.ID

	// orderID is the owning order's number
	orderID kernel.ID

	// productID is the referenced product's catalog key (non-owning)
	productID kernel.ID

	// quantity is the ordered unit count, always positive
	quantity int

	// isConstructed ensures the line was created via a constructor
	isConstructed bool
}

// NewLine creates a line for an order and product with a positive quantity.
// A non-positive quantity is a parameter-validation failure, reported as
// errs.ErrValueIsInvalid so callers can distinguish it from business-rule
// violations.
func NewLine(orderID kernel.ID, productID kernel.ID, quantity int) (*Line, error) {
	l := &Line{
		isConstructed: true,
	}

	if err := errors.Join(
		l.setOrderID(orderID),
		l.setProductID(productID),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine reconstructs a Line from persistence, including its generated key.
func RestoreLine(id kernel.ID, orderID kernel.ID, productID kernel.ID, quantity int) (*Line, error) {
	l, err := NewLine(orderID, productID, quantity)
	if err != nil {
		return nil, err
	}

	if err = l.AssignID(id); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}

	return nil
}

// IsEqual compares two lines by their generated key.
func (l *Line) IsEqual(other *Line) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the store-generated line key. The zero ID means the line has
// not been persisted yet.
func (l *Line) ID() kernel.ID {
	return l.id
}

// AssignID sets the store-generated line key after the first insert.
func (l *Line) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if l.id.Validate() == nil {
		return ErrLineAlreadyIdentified
	}

	l.id = id
	return nil
}

// OrderID returns the owning order's number.
func (l *Line) OrderID() kernel.ID {
	return l.orderID
}

// ProductID returns the referenced product's catalog key.
func (l *Line) ProductID() kernel.ID {
	return l.productID
}

// Quantity returns the ordered unit count.
func (l *Line) Quantity() int {
	return l.quantity
}

func (l *Line) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *Line) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
