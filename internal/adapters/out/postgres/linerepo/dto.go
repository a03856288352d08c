// Package linerepo provides data transfer objects and mapping functions for
// order-line persistence. Lines are insert-only rows keyed by a generated
// serial and owned by their order.
package linerepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/line"
)

// LineDTO represents the database structure for persisting order lines.
type LineDTO struct {
	ID        int `gorm:"primaryKey;autoIncrement"`
	OrderID   int `gorm:"index;not null"`
	ProductID int `gorm:"index;not null"`
	Quantity  int `gorm:"not null"`
}

// TableName specifies the database table name for order-line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts a line entity to its database representation. A line
// that has not been persisted yet maps to a zero ID, letting the store
// generate the key on insert.
func fromDomain(entity *line.Line) LineDTO {
	return LineDTO{
		ID:        entity.ID().Value(),
		OrderID:   entity.OrderID().Value(),
		ProductID: entity.ProductID().Value(),
		Quantity:  entity.Quantity(),
	}
}

// toDomain converts a database DTO to a line entity, including its generated key.
func toDomain(dto LineDTO) (*line.Line, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	return line.RestoreLine(id, orderID, productID, dto.Quantity)
}
