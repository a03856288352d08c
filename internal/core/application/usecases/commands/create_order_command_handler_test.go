package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("creates_order_with_large_customer_discount", func(t *testing.T) {
		ctx := t.Context()
		cust := directoryCustomer(t, "2COM", "Berlin", customer.Large)

		orderRepo := &MockOrderRepository{}
		customerRepo := &MockCustomerRepository{}
		uow := &MockCustomerOrderUoW{}
		uowFactory := &MockCustomerOrderUoWFactory{}

		mock.InOrder(
			uowFactory.On("Create").Return(uow),
			uow.On("Begin", ctx).Return(nil),
			uow.On("CustomerRepository").Return(customerRepo),
			customerRepo.On("Get", ctx, cust.ID()).Return(cust, nil),
			uow.On("OrderRepository").Return(orderRepo),
			orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) {
					created := args.Get(1).(*order.Order)
					require.NoError(t, created.AssignID(mustID(t, 99998)))
				}).
				Return(nil),
			uow.On("Commit", ctx).Return(nil),
			uow.On("Rollback", ctx).Return(nil),
		)

		handler := commands.NewCreateOrderCommandHandler(uowFactory)
		cmd, err := commands.NewCreateOrderCommand(cust.ID())
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, 99998, created.ID().Value())
		assert.Equal(t, "2COM", created.CustomerID().String())
		assert.Equal(t, "0.15", created.DiscountRate().String())
		assert.True(t, created.DeliveryAddress().IsEqual(cust.Address()))
		assert.Nil(t, created.ShippedDate())

		uowFactory.AssertExpectations(t)
		uow.AssertExpectations(t)
		customerRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
	})

	t.Run("standard_customer_gets_zero_discount", func(t *testing.T) {
		ctx := t.Context()
		cust := directoryCustomer(t, "0COM", "Berlin", customer.Standard)

		orderRepo := &MockOrderRepository{}
		customerRepo := &MockCustomerRepository{}
		uow := &MockCustomerOrderUoW{}
		uowFactory := &MockCustomerOrderUoWFactory{}

		mock.InOrder(
			uowFactory.On("Create").Return(uow),
			uow.On("Begin", ctx).Return(nil),
			uow.On("CustomerRepository").Return(customerRepo),
			customerRepo.On("Get", ctx, cust.ID()).Return(cust, nil),
			uow.On("OrderRepository").Return(orderRepo),
			orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil),
			uow.On("Commit", ctx).Return(nil),
			uow.On("Rollback", ctx).Return(nil),
		)

		handler := commands.NewCreateOrderCommandHandler(uowFactory)
		cmd, err := commands.NewCreateOrderCommand(cust.ID())
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, created.DiscountRate().IsZero())

		uow.AssertExpectations(t)
	})

	t.Run("unknown_customer_fails", func(t *testing.T) {
		ctx := t.Context()
		customerID := mustCustomerID(t, "XCOM")
		notFound := errs.NewObjectNotFoundError("customerID", customerID.String())

		customerRepo := &MockCustomerRepository{}
		uow := &MockCustomerOrderUoW{}
		uowFactory := &MockCustomerOrderUoWFactory{}

		mock.InOrder(
			uowFactory.On("Create").Return(uow),
			uow.On("Begin", ctx).Return(nil),
			uow.On("CustomerRepository").Return(customerRepo),
			customerRepo.On("Get", ctx, customerID).Return(nil, notFound),
			uow.On("Rollback", ctx).Return(nil),
		)

		handler := commands.NewCreateOrderCommandHandler(uowFactory)
		cmd, err := commands.NewCreateOrderCommand(customerID)
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, created)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("begin_failure_is_returned", func(t *testing.T) {
		ctx := t.Context()
		beginErr := errors.New("connection refused")

		uow := &MockCustomerOrderUoW{}
		uowFactory := &MockCustomerOrderUoWFactory{}

		uowFactory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(beginErr)

		handler := commands.NewCreateOrderCommandHandler(uowFactory)
		cmd, err := commands.NewCreateOrderCommand(mustCustomerID(t, "2COM"))
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, beginErr)
		assert.Nil(t, created)
		uow.AssertExpectations(t)
	})

	t.Run("unconstructed_command_fails_before_any_work", func(t *testing.T) {
		ctx := t.Context()
		uowFactory := &MockCustomerOrderUoWFactory{}

		handler := commands.NewCreateOrderCommandHandler(uowFactory)

		created, err := handler.Handle(ctx, commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
		assert.Nil(t, created)
		uowFactory.AssertNotCalled(t, "Create")
	})
}
