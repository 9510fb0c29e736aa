// Package ports defines the contracts between the domain layer and
// infrastructure: repositories for the atelier's aggregates, the unit of
// work transaction boundary, and the style advisor gateway. These
// interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	// The customer must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
