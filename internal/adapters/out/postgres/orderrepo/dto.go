// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain entity and its relational shape.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number is a store-generated serial; the delivery address is
// embedded as delivery_-prefixed columns.
type OrderDTO struct {
	ID              int             `gorm:"primaryKey;autoIncrement"`
	CustomerID      string          `gorm:"type:varchar(10);index"`
	EntryDate       time.Time       `gorm:"not null"`
	ShippedDate     *time.Time      `gorm:"index"`
	DiscountRate    decimal.Decimal `gorm:"type:numeric(4,3)"`
	DeliveryAddress AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address columns within the
// orders table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(120)"`
	City       string `gorm:"type:varchar(60)"`
	PostalCode string `gorm:"type:varchar(10)"`
}

// fromDomain converts an order domain aggregate to its database
// representation. An order that has not been persisted yet maps to a zero ID,
// letting the store generate the order number on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Value(),
		CustomerID:   aggregate.CustomerID().String(),
		EntryDate:    aggregate.EntryDate(),
		ShippedDate:  aggregate.ShippedDate(),
		DiscountRate: aggregate.DiscountRate(),
		DeliveryAddress: AddressDTO{
			Street:     aggregate.DeliveryAddress().Street(),
			City:       aggregate.DeliveryAddress().City(),
			PostalCode: aggregate.DeliveryAddress().PostalCode(),
		},
	}
}

// toDomain converts a database DTO to an order domain aggregate, including
// its generated number and shipment state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewCustomerID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	deliveryAddress, err := kernel.NewAddress(
		dto.DeliveryAddress.Street,
		dto.DeliveryAddress.City,
		dto.DeliveryAddress.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, deliveryAddress, dto.DiscountRate, dto.EntryDate, dto.ShippedDate)
}
