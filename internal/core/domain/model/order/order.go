package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyShipped is returned when an operation requires an
	// unshipped order: adding a line to, or re-shipping, a shipped order.
	ErrOrderAlreadyShipped = errs.NewInvalidStateError("order already shipped")

	// ErrOrderAlreadyIdentified is returned when trying to assign a generated
	// number to an order that already has one.
	ErrOrderAlreadyIdentified = errs.NewInvalidStateError("order already has a generated number")
)

// Order is the aggregate root for a customer order. It manages the order
// lifecycle from creation to shipment.
//
// Order follows these invariants:
//   - The delivery address and discount rate are snapshots taken from the
//     customer at creation time and never change afterwards
//   - Once the order is shipped (shippedDate set), no new lines may be added
//   - Shipment is recorded exactly once; Shipped is a terminal state
//
// The order number is generated by the store; a freshly created Order carries
// a zero ID until the repository assigns the generated key via AssignID.
type Order struct {
	// id is the store-generated order number, zero until persisted
	id kernel.ID

	// customerID references the ordering customer
	customerID kernel.CustomerID

	// entryDate is the date the order was entered
	entryDate time.Time

	// shippedDate is nil while the order is unshipped
	shippedDate *time.Time

	// discountRate is the rate snapshotted from the customer tier at creation
	discountRate decimal.Decimal

	// deliveryAddress is the address snapshotted from the customer at creation
	deliveryAddress kernel.Address

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new unshipped Order for a customer. The delivery address
// and discount rate must already be resolved from the customer; the order
// stores them as snapshots.
func NewOrder(
	customerID kernel.CustomerID,
	deliveryAddress kernel.Address,
	discountRate decimal.Decimal,
	entryDate time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setDeliveryAddress(deliveryAddress),
		o.setDiscountRate(discountRate),
		o.setEntryDate(entryDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// generated number and shipment state.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.CustomerID,
	deliveryAddress kernel.Address,
	discountRate decimal.Decimal,
	entryDate time.Time,
	shippedDate *time.Time,
) (*Order, error) {
	o, err := NewOrder(customerID, deliveryAddress, discountRate, entryDate)
	if err != nil {
		return nil, err
	}

	if err = o.AssignID(id); err != nil {
		return nil, err
	}

	if shippedDate != nil {
		shipped := *shippedDate
		o.shippedDate = &shipped
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their generated number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the store-generated order number. The zero ID means the order
// has not been persisted yet.
func (o *Order) ID() kernel.ID {
	return o.id
}

// AssignID sets the store-generated order number after the first insert.
// Assigning a number twice is an error.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if o.id.Validate() == nil {
		return ErrOrderAlreadyIdentified
	}

	o.id = id
	return nil
}

// CustomerID returns the ordering customer's account code.
func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

// EntryDate returns the date the order was entered.
func (o *Order) EntryDate() time.Time {
	return o.entryDate
}

// ShippedDate returns the shipment date, or nil while the order is unshipped.
func (o *Order) ShippedDate() *time.Time {
	if o.shippedDate == nil {
		return nil
	}

	shipped := *o.shippedDate
	return &shipped
}

// DiscountRate returns the discount rate snapshotted at creation.
func (o *Order) DiscountRate() decimal.Decimal {
	return o.discountRate
}

// DeliveryAddress returns the delivery address snapshotted at creation.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// IsShipped reports whether the order has been shipped.
func (o *Order) IsShipped() bool {
	return o.shippedDate != nil
}

// AcceptsNewLines returns nil while the order is unshipped, and
// ErrOrderAlreadyShipped once it is not. New order lines may only be added
// to unshipped orders.
func (o *Order) AcceptsNewLines() error {
	if o.IsShipped() {
		return ErrOrderAlreadyShipped
	}

	return nil
}

// RecordShipment marks the order as shipped at the given time.
//
// Shipped is terminal: recording a shipment twice fails with
// ErrOrderAlreadyShipped, re-shipment is explicitly disallowed.
func (o *Order) RecordShipment(shippedAt time.Time) error {
	if o.IsShipped() {
		return ErrOrderAlreadyShipped
	}

	if shippedAt.IsZero() {
		return errs.NewValueIsRequiredError("shippedAt")
	}

	o.shippedDate = &shippedAt
	return nil
}

func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setDiscountRate(discountRate decimal.Decimal) error {
	if discountRate.IsNegative() || discountRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError("discountRate", discountRate, 0, 1)
	}
	o.discountRate = discountRate
	return nil
}

func (o *Order) setEntryDate(entryDate time.Time) error {
	if entryDate.IsZero() {
		return errs.NewValueIsRequiredError("entryDate")
	}
	o.entryDate = entryDate
	return nil
}
