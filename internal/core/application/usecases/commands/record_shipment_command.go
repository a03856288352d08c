package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrRecordShipmentCommandIsNotConstructed = errors.New(
		"RecordShipmentCommand must be created via NewRecordShipmentCommand constructor",
	)
)

// RecordShipmentCommand represents a request to mark an order as shipped.
type RecordShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewRecordShipmentCommand creates a command to ship an order.
// Validates that the order number is well-formed.
func NewRecordShipmentCommand(orderID kernel.ID) (RecordShipmentCommand, error) {
	shipmentCommand := RecordShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentCommand.setOrderID(orderID); err != nil {
		return RecordShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordShipmentCommandIsNotConstructed if validation fails.
func (c RecordShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentCommandIsNotConstructed)
}

// OrderID returns the number of the order to ship.
func (c RecordShipmentCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *RecordShipmentCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
