package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetUnshippedOrdersQueryHandler retrieves orders awaiting shipment from the
// database. The read bypasses the aggregates and their repositories: it is a
// plain projection over the orders table.
type GetUnshippedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnshippedOrdersQueryHandler creates a handler for unshipped order queries.
// Requires a GORM database connection for query execution.
func NewGetUnshippedOrdersQueryHandler(db *gorm.DB) GetUnshippedOrdersQueryHandler {
	return GetUnshippedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unshipped orders.
// Results are sorted by order number for consistent output.
func (h GetUnshippedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnshippedOrdersQuery,
) ([]GetUnshippedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnshippedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			entry_date
		FROM orders
		WHERE shipped_date IS NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var customerCode string
		var entryDate time.Time

		err = rows.Scan(
			&id,
			&customerCode,
			&entryDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}

		customerID, custErr := kernel.NewCustomerID(customerCode)
		if custErr != nil {
			return nil, custErr
		}

		orders = append(orders, GetUnshippedOrdersQueryResponse{
			ID:         orderID,
			CustomerID: customerID,
			EntryDate:  entryDate,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
