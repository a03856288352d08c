// Package product contains the Product aggregate of the ordering domain.
//
// Product owns the two denormalized stock counters the business rules revolve
// around: unitsInStock (decremented at shipment time) and unitsOnOrder
// (incremented at line-creation time). The aggregate is the only place these
// counters can change, which keeps the stock invariants enforceable:
// stock never goes negative, and committed units only grow through
// reservations.
package product
