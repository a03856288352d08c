// Package productrepo provides data transfer objects and mapping functions
// for product persistence, including the denormalized stock counters.
package productrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Catalog keys are assigned by the catalog, not generated here.
type ProductDTO struct {
	ID           int             `gorm:"primaryKey;autoIncrement:false"`
	Name         string          `gorm:"type:varchar(120);not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2)"`
	UnitsInStock int             `gorm:"not null"`
	UnitsOnOrder int             `gorm:"not null"`
	ReorderLevel int             `gorm:"not null"`
	Discontinued bool            `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Value(),
		Name:         aggregate.Name(),
		UnitPrice:    aggregate.UnitPrice(),
		UnitsInStock: aggregate.UnitsInStock(),
		UnitsOnOrder: aggregate.UnitsOnOrder(),
		ReorderLevel: aggregate.ReorderLevel(),
		Discontinued: aggregate.IsDiscontinued(),
	}
}

// toDomain converts a database DTO to a product domain aggregate, including
// the current counter values and the discontinued flag.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.UnitPrice,
		dto.UnitsInStock,
		dto.UnitsOnOrder,
		dto.ReorderLevel,
		dto.Discontinued,
	)
}
