package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
		"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
	)
)

// GetLowStockProductsQuery retrieves active products whose stock fell below
// their reorder level. Used by the replenishment report.
type GetLowStockProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a query to retrieve products needing
// replenishment. Discontinued products are never reported.
func NewGetLowStockProductsQuery() GetLowStockProductsQuery {
	return GetLowStockProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockProductsQueryIsNotConstructed if validation fails.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// GetLowStockProductsQueryResponse represents one product below its reorder level.
type GetLowStockProductsQueryResponse struct {
	ID           kernel.ID
	Name         string
	UnitsInStock int
	UnitsOnOrder int
	ReorderLevel int
}
