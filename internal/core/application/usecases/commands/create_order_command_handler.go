package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Looks up the customer, snapshots the delivery address, derives the discount
// rate from the customer tier and persists the new unshipped order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	customerID, _ := kernel.NewCustomerID("2COM")
//	cmd, _ := NewCreateOrderCommand(customerID)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created carries the store-generated order number
type CreateOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
	discounts  services.DiscountCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CustomerOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CustomerOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		discounts:  services.NewDiscountCalculator(),
	}
}

// Handle processes the order creation command.
// Fails with errs.ErrObjectNotFound when the customer does not exist. The
// discount classification is consulted exactly once and its result is
// snapshotted onto the order, together with the customer's current address.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	rate, err := h.discounts.RateFor(cust)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cust.ID(), cust.Address(), rate, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
