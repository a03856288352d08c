package product

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrInsufficientStock is returned when a reservation or shipment would
	// require more units than are currently in stock.
	ErrInsufficientStock = errs.NewInvalidStateError("insufficient stock")

	// ErrProductDiscontinued is returned when trying to order a product that
	// has been withdrawn from the catalog.
	ErrProductDiscontinued = errs.NewInvalidStateError("product is discontinued")
)

// Product is the aggregate guarding the two denormalized stock counters of the
// ordering system: unitsInStock and unitsOnOrder.
//
// Product maintains these invariants:
//   - unitsInStock never goes below zero
//   - unitsOnOrder only grows through Reserve (order-line creation)
//   - unitsInStock only shrinks through Ship (order shipment)
//
// All counter mutation goes through Reserve and Ship; no other code path may
// touch the counters. The struct uses private fields so the invariants cannot
// be bypassed.
type Product struct {
	// id is the catalog reference of the product
	id kernel.ID

	// name is the catalog display name
	name string

	// unitPrice is the current catalog price per unit
	unitPrice decimal.Decimal

	// unitsInStock is the number of units physically available
	unitsInStock int

	// unitsOnOrder is the total quantity committed on open order lines
	unitsOnOrder int

	// reorderLevel is the stock threshold that triggers replenishment
	reorderLevel int

	// discontinued marks products withdrawn from the catalog
	discontinued bool

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new catalog Product with validated attributes.
// A new product starts with no committed order units and is active.
func NewProduct(
	id kernel.ID,
	name string,
	unitPrice decimal.Decimal,
	unitsInStock int,
	reorderLevel int,
) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPrice),
		p.setUnitsInStock(unitsInStock),
		p.setReorderLevel(reorderLevel),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including the
// current counter values and the discontinued flag.
func RestoreProduct(
	id kernel.ID,
	name string,
	unitPrice decimal.Decimal,
	unitsInStock int,
	unitsOnOrder int,
	reorderLevel int,
	discontinued bool,
) (*Product, error) {
	p, err := NewProduct(id, name, unitPrice, unitsInStock, reorderLevel)
	if err != nil {
		return nil, err
	}

	if unitsOnOrder < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitsOnOrder",
			fmt.Errorf("%d is negative", unitsOnOrder))
	}

	p.unitsOnOrder = unitsOnOrder
	p.discontinued = discontinued
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their catalog reference.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the catalog reference of the product.
func (p *Product) ID() kernel.ID {
	return p.id
}

// Name returns the catalog display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price per unit.
func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// UnitsInStock returns the number of units physically available.
func (p *Product) UnitsInStock() int {
	return p.unitsInStock
}

// UnitsOnOrder returns the total quantity committed on open order lines.
func (p *Product) UnitsOnOrder() int {
	return p.unitsOnOrder
}

// ReorderLevel returns the replenishment threshold.
func (p *Product) ReorderLevel() int {
	return p.reorderLevel
}

// IsDiscontinued reports whether the product was withdrawn from the catalog.
func (p *Product) IsDiscontinued() bool {
	return p.discontinued
}

// Reserve commits quantity units to a new order line.
//
// Business rules:
//   - quantity must be positive
//   - the product must not be discontinued
//   - unitsInStock must cover the requested quantity
//
// On success unitsOnOrder grows by quantity. Stock itself is not touched here;
// units leave the stock only when the owning order ships.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if p.discontinued {
		return ErrProductDiscontinued
	}

	if p.unitsInStock < quantity {
		return ErrInsufficientStock
	}

	p.unitsOnOrder += quantity
	return nil
}

// Ship removes quantity units from stock when the owning order is shipped.
//
// Stock is re-validated against the current value: concurrent orders may have
// consumed units since the line was created, and unitsInStock must never go
// negative. A failed Ship aborts the whole shipment transaction.
func (p *Product) Ship(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if p.unitsInStock < quantity {
		return ErrInsufficientStock
	}

	p.unitsInStock -= quantity
	return nil
}

// IsBelowReorderLevel reports whether the available stock fell under the
// replenishment threshold. Discontinued products are never replenished.
func (p *Product) IsBelowReorderLevel() bool {
	return !p.discontinued && p.unitsInStock < p.reorderLevel
}

func (p *Product) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	p.unitPrice = unitPrice
	return nil
}

func (p *Product) setUnitsInStock(unitsInStock int) error {
	if unitsInStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitsInStock",
			fmt.Errorf("%d is negative", unitsInStock))
	}
	p.unitsInStock = unitsInStock
	return nil
}

func (p *Product) setReorderLevel(reorderLevel int) error {
	if reorderLevel < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reorderLevel",
			fmt.Errorf("%d is negative", reorderLevel))
	}
	p.reorderLevel = reorderLevel
	return nil
}
