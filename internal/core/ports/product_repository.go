package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
//
// Product counters (unitsInStock, unitsOnOrder) are the only contended shared
// state in the system. Counter updates must read the product through
// GetForUpdate inside a transaction so concurrent reservations and shipments
// cannot jointly oversell stock.
type ProductRepository interface {
	// Add persists a new product aggregate.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its catalog key.
	// Returns errs.ErrObjectNotFound if no such product exists.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// GetForUpdate retrieves a product aggregate with a row-level write lock
	// held for the remainder of the enclosing transaction. Use it before any
	// counter mutation to prevent lost updates between concurrent calls.
	GetForUpdate(ctx context.Context, id kernel.ID) (*product.Product, error)
}
