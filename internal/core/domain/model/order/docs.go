// Package order contains the Order aggregate root of the ordering domain.
//
// An order is created for a customer with a snapshot of the customer's
// delivery address and discount rate, collects order lines while unshipped,
// and transitions exactly once to the terminal Shipped state:
//
//	Unshipped --[RecordShipment]--> Shipped
//
// Unshipped is the only state in which new lines are accepted.
package order
