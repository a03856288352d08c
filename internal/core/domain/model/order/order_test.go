package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	customerID, err := kernel.NewCustomerID("0COM")
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")
	require.NoError(t, err)

	o, err := order.NewOrder(customerID, addr, decimal.Zero, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_unshipped_order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.False(t, o.IsShipped())
		assert.Nil(t, o.ShippedDate())
		assert.Equal(t, "0COM", o.CustomerID().String())
		assert.Equal(t, "Berlin", o.DeliveryAddress().City())
		require.Error(t, o.ID().Validate(), "a new order has no generated number yet")
	})

	t.Run("keeps_discount_rate_snapshot", func(t *testing.T) {
		customerID, _ := kernel.NewCustomerID("2COM")
		addr, _ := kernel.NewAddress("Hauptstr. 29", "Bern", "3012")

		o, err := order.NewOrder(customerID, addr, decimal.NewFromFloat(0.15), time.Now())

		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(0.15).Equal(o.DiscountRate()))
	})

	t.Run("rejects_unconstructed_customer_id", func(t *testing.T) {
		addr, _ := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")

		_, err := order.NewOrder(kernel.CustomerID{}, addr, decimal.Zero, time.Now())

		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_address", func(t *testing.T) {
		customerID, _ := kernel.NewCustomerID("0COM")

		_, err := order.NewOrder(customerID, kernel.Address{}, decimal.Zero, time.Now())

		require.Error(t, err)
	})

	t.Run("rejects_negative_discount_rate", func(t *testing.T) {
		customerID, _ := kernel.NewCustomerID("0COM")
		addr, _ := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")

		_, err := order.NewOrder(customerID, addr, decimal.NewFromFloat(-0.1), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_discount_rate_of_one_or_more", func(t *testing.T) {
		customerID, _ := kernel.NewCustomerID("0COM")
		addr, _ := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")

		_, err := order.NewOrder(customerID, addr, decimal.NewFromInt(1), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_zero_entry_date", func(t *testing.T) {
		customerID, _ := kernel.NewCustomerID("0COM")
		addr, _ := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")

		_, err := order.NewOrder(customerID, addr, decimal.Zero, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_fails_validation", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("assigns_generated_number_once", func(t *testing.T) {
		o := newTestOrder(t)
		id, _ := kernel.NewID(99998)

		require.NoError(t, o.AssignID(id))

		assert.Equal(t, 99998, o.ID().Value())
	})

	t.Run("rejects_second_assignment", func(t *testing.T) {
		o := newTestOrder(t)
		first, _ := kernel.NewID(99998)
		second, _ := kernel.NewID(99999)
		require.NoError(t, o.AssignID(first))

		err := o.AssignID(second)

		require.ErrorIs(t, err, order.ErrOrderAlreadyIdentified)
		assert.Equal(t, 99998, o.ID().Value())
	})

	t.Run("rejects_unconstructed_id", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.AssignID(kernel.ID{}))
	})
}

func TestOrder_RecordShipment(t *testing.T) {
	t.Run("stamps_shipped_date", func(t *testing.T) {
		o := newTestOrder(t)
		shippedAt := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

		require.NoError(t, o.RecordShipment(shippedAt))

		assert.True(t, o.IsShipped())
		require.NotNil(t, o.ShippedDate())
		assert.Equal(t, shippedAt, *o.ShippedDate())
	})

	t.Run("second_shipment_fails", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.RecordShipment(time.Now()))

		err := o.RecordShipment(time.Now())

		require.ErrorIs(t, err, order.ErrOrderAlreadyShipped)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects_zero_time", func(t *testing.T) {
		o := newTestOrder(t)

		require.ErrorIs(t, o.RecordShipment(time.Time{}), errs.ErrValueIsRequired)
	})
}

func TestOrder_AcceptsNewLines(t *testing.T) {
	t.Run("unshipped_order_accepts_lines", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AcceptsNewLines())
	})

	t.Run("shipped_order_rejects_lines", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.RecordShipment(time.Now()))

		err := o.AcceptsNewLines()

		require.ErrorIs(t, err, order.ErrOrderAlreadyShipped)
	})
}

func TestOrder_ShippedDate_ReturnsCopy(t *testing.T) {
	o := newTestOrder(t)
	shippedAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, o.RecordShipment(shippedAt))

	got := o.ShippedDate()
	*got = got.Add(48 * time.Hour)

	assert.Equal(t, shippedAt, *o.ShippedDate(), "mutating the returned date must not affect the order")
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_shipped_order", func(t *testing.T) {
		id, _ := kernel.NewID(99999)
		customerID, _ := kernel.NewCustomerID("2COM")
		addr, _ := kernel.NewAddress("Hauptstr. 29", "Bern", "3012")
		shippedAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, customerID, addr, decimal.NewFromFloat(0.15), shippedAt.AddDate(0, 0, -3), &shippedAt)

		require.NoError(t, err)
		assert.True(t, o.IsShipped())
		assert.Equal(t, 99999, o.ID().Value())
		require.ErrorIs(t, o.AcceptsNewLines(), order.ErrOrderAlreadyShipped)
	})

	t.Run("restores_unshipped_order", func(t *testing.T) {
		id, _ := kernel.NewID(99998)
		customerID, _ := kernel.NewCustomerID("0COM")
		addr, _ := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")

		o, err := order.RestoreOrder(id, customerID, addr, decimal.Zero, time.Now(), nil)

		require.NoError(t, err)
		assert.False(t, o.IsShipped())
	})
}
