// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"atelier/internal/core/ports"
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

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// StyleRepoFactory provides access to style repository within a transaction.
	StyleRepoFactory interface {
		StyleRepository() ports.StyleRepository
	}

	// TailorRepoFactory provides access to tailor repository within a transaction.
	TailorRepoFactory interface {
		TailorRepository() ports.TailorRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// StyleUoW manages transactions for style-catalog operations.
	StyleUoW interface {
		TxManager
		StyleRepoFactory
	}

	// StyleUoWFactory creates new style unit of work instances.
	StyleUoWFactory interface {
		Create() StyleUoW
	}

	// TailorUoW manages transactions for tailor-only operations.
	TailorUoW interface {
		TxManager
		TailorRepoFactory
	}

	// TailorUoWFactory creates new tailor unit of work instances.
	TailorUoWFactory interface {
		Create() TailorUoW
	}

	// IntakeUoW manages transactions for order submission.
	// Submission reads the customer aggregate and writes the order aggregate.
	IntakeUoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// ProductionUoW manages transactions across tailor and order aggregates.
	// Used for commands that coordinate assignment and completion between
	// the roster and the order book.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   tailorRepo := uow.TailorRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ProductionUoW interface {
		TxManager
		TailorRepoFactory
		OrderRepoFactory
	}

	// ProductionUoWFactory creates new production unit of work instances.
	ProductionUoWFactory interface {
		Create() ProductionUoW
	}
)
