package services

import (
	"ordering/internal/core/domain/model/customer"

	"github.com/shopspring/decimal"
)

// largeCustomerRate is the fixed discount applied to large-tier customers.
var largeCustomerRate = decimal.NewFromFloat(0.15)

// DiscountCalculator is a domain service that derives the discount rate for a
// new order from the customer's tier classification.
//
// Business rules:
//   - Large-tier customers receive a fixed 15% discount
//   - All other customers receive no discount
//
// The rate is computed once at order creation and snapshotted on the order;
// later tier changes never affect existing orders.
//
// Example usage:
//
//	calculator := NewDiscountCalculator()
//	rate, err := calculator.RateFor(cust)
//	if err != nil {
//	    // customer was not properly constructed
//	}
//	order, err := order.NewOrder(cust.ID(), cust.Address(), rate, time.Now())
type DiscountCalculator struct{}

// NewDiscountCalculator creates a new DiscountCalculator instance.
func NewDiscountCalculator() DiscountCalculator {
	return DiscountCalculator{}
}

// RateFor returns the discount rate for the given customer.
func (d DiscountCalculator) RateFor(cust *customer.Customer) (decimal.Decimal, error) {
	if err := cust.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	if cust.Tier() == customer.Large {
		return largeCustomerRate, nil
	}

	return decimal.Zero, nil
}
