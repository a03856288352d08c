package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustCustomerID(t *testing.T, code string) kernel.CustomerID {
	t.Helper()
	id, err := kernel.NewCustomerID(code)
	require.NoError(t, err)
	return id
}

func unshippedOrder(t *testing.T, orderID int) *order.Order {
	t.Helper()
	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		mustID(t, orderID), mustCustomerID(t, "0COM"), addr, decimal.Zero, time.Now(), nil)
	require.NoError(t, err)
	return o
}

func shippedOrder(t *testing.T, orderID int) *order.Order {
	t.Helper()
	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")
	require.NoError(t, err)
	shippedAt := time.Now().AddDate(0, 0, -1)
	o, err := order.RestoreOrder(
		mustID(t, orderID), mustCustomerID(t, "0COM"), addr, decimal.Zero,
		shippedAt.AddDate(0, 0, -5), &shippedAt)
	require.NoError(t, err)
	return o
}

func productWithStock(t *testing.T, productID int, unitsInStock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		mustID(t, productID), "Chai", decimal.NewFromFloat(18.50), unitsInStock, 10)
	require.NoError(t, err)
	return p
}

func directoryCustomer(t *testing.T, code string, city string, tier customer.Tier) *customer.Customer {
	t.Helper()
	addr, err := kernel.NewAddress("Obere Str. 57", city, "12209")
	require.NoError(t, err)
	c, err := customer.NewCustomer(mustCustomerID(t, code), "Alfreds Futterkiste", addr, tier)
	require.NoError(t, err)
	return c
}
