package customer

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a read-only view of a customer account. The customer directory
// is an external collaborator: this core never creates, updates or deletes
// customers, it only reads the address and tier to snapshot them onto new
// orders.
type Customer struct {
	// id is the account code of the customer
	id kernel.CustomerID

	// companyName is the registered company name
	companyName string

	// address is the customer's current postal address
	address kernel.Address

	// tier is the purchase-volume classification
	tier Tier

	// isConstructed ensures the customer was created via NewCustomer
	isConstructed bool
}

// NewCustomer creates a Customer with validated attributes. Used when
// reconstructing customers from the directory store.
func NewCustomer(id kernel.CustomerID, companyName string, address kernel.Address, tier Tier) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCompanyName(companyName),
		c.setAddress(address),
		c.setTier(tier),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their account code.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's account code.
func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

// CompanyName returns the registered company name.
func (c *Customer) CompanyName() string {
	return c.companyName
}

// Address returns the customer's current postal address.
func (c *Customer) Address() kernel.Address {
	return c.address
}

// Tier returns the purchase-volume classification.
func (c *Customer) Tier() Tier {
	return c.tier
}

func (c *Customer) setID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setCompanyName(companyName string) error {
	if companyName == "" {
		return errs.NewValueIsRequiredError("companyName")
	}
	c.companyName = companyName
	return nil
}

func (c *Customer) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *Customer) setTier(tier Tier) error {
	if !tier.IsValid() {
		return errs.NewValueIsInvalidError("tier")
	}
	c.tier = tier
	return nil
}
