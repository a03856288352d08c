package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddOrderLineCommandIsNotConstructed = errors.New(
		"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
	)
)

// AddOrderLineCommand represents a request to add one line to an existing,
// unshipped order.
//
// The quantity is validated here, at the parameter boundary: a non-positive
// quantity fails command construction with errs.ErrValueIsInvalid, before any
// business rule runs. Callers can therefore distinguish bad input from
// business-rule rejections (missing entities, shipped order, short stock).
//
// Example:
//
//	orderID, _ := kernel.NewID(99998)
//	productID, _ := kernel.NewID(93)
//	cmd, err := NewAddOrderLineCommand(orderID, productID, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid line request: %w", err)
//	}
//
//	handler := NewAddOrderLineCommandHandler(uowFactory)
//	added, err := handler.Handle(ctx, cmd)
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a line to an order.
// Validates that both keys are well-formed and the quantity is positive.
func NewAddOrderLineCommand(orderID kernel.ID, productID kernel.ID, quantity int) (AddOrderLineCommand, error) {
	lineCommand := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderID(orderID),
		lineCommand.setProductID(productID),
		lineCommand.setQuantity(quantity),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderLineCommandIsNotConstructed if validation fails.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the number of the order receiving the line.
func (c AddOrderLineCommand) OrderID() kernel.ID {
	return c.orderID
}

// ProductID returns the catalog key of the ordered product.
func (c AddOrderLineCommand) ProductID() kernel.ID {
	return c.productID
}

// Quantity returns the ordered unit count.
func (c AddOrderLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
