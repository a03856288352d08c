package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the read-only contract against the external
// customer directory. The ordering core never writes customers.
type CustomerRepository interface {
	// Get retrieves a customer by account code.
	// Returns errs.ErrObjectNotFound if no such customer exists.
	Get(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)
}
