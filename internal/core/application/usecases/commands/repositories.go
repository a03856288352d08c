// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Each handler runs as one atomic unit of work: every read
// and write between Begin and Commit observes a consistent snapshot and
// commits or rolls back together.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderLineRepoFactory provides access to the order-line repository within a transaction.
	OrderLineRepoFactory interface {
		OrderLineRepository() ports.OrderLineRepository
	}

	// CustomerRepoFactory provides access to the customer directory within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CustomerOrderUoW manages transactions for order creation: it reads the
	// customer directory and writes the new order atomically.
	CustomerOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// CustomerOrderUoWFactory creates unit of work instances for order creation.
	CustomerOrderUoWFactory interface {
		Create() CustomerOrderUoW
	}

	// FulfillmentUoW manages transactions that touch orders, lines and the
	// product stock counters together: adding a line and recording a shipment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		OrderLineRepoFactory
	}

	// FulfillmentUoWFactory creates unit of work instances for fulfillment operations.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
