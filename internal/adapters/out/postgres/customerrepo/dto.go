// Package customerrepo provides the read-only adapter over the customer
// directory table. The ordering core never writes customers; the rows are
// maintained by the directory system.
package customerrepo

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure of the customer directory.
type CustomerDTO struct {
	ID          string     `gorm:"type:varchar(10);primaryKey"`
	CompanyName string     `gorm:"type:varchar(120);not null"`
	Address     AddressDTO `gorm:"embedded"`
	Tier        string     `gorm:"type:varchar(20);not null"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents the embedded address columns within the customers table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(120)"`
	City       string `gorm:"type:varchar(60)"`
	PostalCode string `gorm:"type:varchar(10)"`
}

// toDomain converts a database DTO to a customer domain entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewCustomerID(dto.ID)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.PostalCode)
	if err != nil {
		return nil, err
	}

	tier, err := customer.TierFromString(dto.Tier)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.CompanyName, address, tier)
}
