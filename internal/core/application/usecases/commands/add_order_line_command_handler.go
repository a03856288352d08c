package commands

import (
	"context"

	"ordering/internal/core/domain/model/line"
)

// AddOrderLineCommandHandler handles the business logic for adding a line to
// an order. The checks run in a fixed sequence and the first failure wins:
//
//  1. the referenced product must exist
//  2. the order must exist
//  3. the order must not be shipped yet
//  4. the product must have sufficient stock for the quantity
//
// On success the line is persisted and the product's unitsOnOrder counter
// grows by the quantity. Stock itself is untouched until shipment. All
// effects commit together; any failure rolls everything back.
type AddOrderLineCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for line creation operations.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewAddOrderLineCommandHandler(uowFactory FulfillmentUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-line command and returns the persisted line with
// its store-generated key.
//
// The product row is read with a write lock so a concurrent reservation or
// shipment cannot pass the stock-sufficiency check on the same units.
func (h AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) (*line.Line, error) {
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

	productRepo := uow.ProductRepository()
	prod, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ord.AcceptsNewLines(); err != nil {
		return nil, err
	}

	if err = prod.Reserve(cmd.Quantity()); err != nil {
		return nil, err
	}

	newLine, err := line.NewLine(ord.ID(), prod.ID(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderLineRepository().Add(ctx, newLine); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, prod); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newLine, nil
}
