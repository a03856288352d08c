package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetLowStockProductsQueryHandler retrieves products needing replenishment
// from the database. A plain projection over the products table.
type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockProductsQueryHandler creates a handler for low-stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve active products below their reorder
// level. Results are sorted by catalog key for consistent output.
func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]GetLowStockProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetLowStockProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			units_in_stock,
			units_on_order,
			reorder_level
		FROM products
		WHERE units_in_stock < reorder_level
		  AND NOT discontinued
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var productResp GetLowStockProductsQueryResponse

		err = rows.Scan(
			&id,
			&productResp.Name,
			&productResp.UnitsInStock,
			&productResp.UnitsOnOrder,
			&productResp.ReorderLevel,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		productResp.ID = productID

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
