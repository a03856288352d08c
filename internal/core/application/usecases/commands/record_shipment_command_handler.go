package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// RecordShipmentCommandHandler handles the business logic for shipping an
// order: it stamps the shipment date and decrements each referenced product's
// stock by the line quantity, all in one transaction.
//
// Stock is re-validated against its current value per line. Units may have
// been consumed by other orders since the lines were created; if any
// decrement would drive stock negative the whole shipment fails and every
// decrement already applied in this call is rolled back.
//
// Example:
//
//	handler := NewRecordShipmentCommandHandler(uowFactory)
//	orderID, _ := kernel.NewID(99998)
//	cmd, _ := NewRecordShipmentCommand(orderID)
//
//	shipped, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyShipped):
//	    // re-shipment is disallowed
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case err != nil:
//	    // storage failure, everything rolled back
//	}
type RecordShipmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewRecordShipmentCommandHandler creates a handler for shipment operations.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewRecordShipmentCommandHandler(uowFactory FulfillmentUoWFactory) RecordShipmentCommandHandler {
	return RecordShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment command and returns the shipped order.
// Fails with errs.ErrObjectNotFound for an unknown order and with
// order.ErrOrderAlreadyShipped when the order was shipped before.
func (h RecordShipmentCommandHandler) Handle(ctx context.Context, cmd RecordShipmentCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ord.RecordShipment(time.Now()); err != nil {
		return nil, err
	}

	lines, err := uow.OrderLineRepository().GetAllByOrderID(ctx, ord.ID())
	if err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, shippedLine := range lines {
		prod, lineErr := productRepo.GetForUpdate(ctx, shippedLine.ProductID())
		if lineErr != nil {
			return nil, lineErr
		}

		if lineErr = prod.Ship(shippedLine.Quantity()); lineErr != nil {
			return nil, lineErr
		}

		if lineErr = productRepo.Update(ctx, prod); lineErr != nil {
			return nil, lineErr
		}
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
