// Package services provides domain services that implement business rules
// spanning multiple domain entities in the ordering system.
//
// The package includes:
//   - DiscountCalculator: derives an order's discount rate from the
//     customer's tier classification
package services
