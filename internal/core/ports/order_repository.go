// Package ports defines repository and unit-of-work interfaces for the
// ordering domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its generated number
	// back onto the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must already have a generated number.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its number.
	// Returns errs.ErrObjectNotFound if no such order exists.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
