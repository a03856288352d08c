package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/line"
)

// OrderLineRepository defines the persistence contract for order lines.
// Lines are owned by their order; they are inserted while the order is
// unshipped and read back at shipment time. No line is ever deleted.
type OrderLineRepository interface {
	// Add persists a new line and assigns its generated key back onto the
	// entity.
	Add(ctx context.Context, entity *line.Line) error

	// GetAllByOrderID retrieves all lines belonging to an order,
	// in insertion order.
	GetAllByOrderID(ctx context.Context, orderID kernel.ID) ([]*line.Line, error)
}
