package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetUnshippedOrdersQueryIsNotConstructed = errors.New(
		"GetUnshippedOrdersQuery must be created via NewGetUnshippedOrdersQuery constructor",
	)
)

// GetUnshippedOrdersQuery retrieves all orders awaiting shipment.
// Returns orders without a shipment date for fulfillment monitoring.
//
// Example:
//
//	query := NewGetUnshippedOrdersQuery()
//	handler := NewGetUnshippedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unshipped orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting shipment\n", len(orders))
type GetUnshippedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnshippedOrdersQuery creates a query to retrieve unshipped orders.
// This is a parameterless query that fetches every order without a shipment date.
func NewGetUnshippedOrdersQuery() GetUnshippedOrdersQuery {
	return GetUnshippedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnshippedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnshippedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnshippedOrdersQueryIsNotConstructed)
}

// GetUnshippedOrdersQueryResponse represents one order awaiting shipment.
type GetUnshippedOrdersQueryResponse struct {
	ID         kernel.ID
	CustomerID kernel.CustomerID
	EntryDate  time.Time
}
