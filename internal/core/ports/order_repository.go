package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items, status, and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInAwaitingAssignment retrieves the first order awaiting a tailor.
	// Used by the assignment workflow to find pending orders.
	GetFirstInAwaitingAssignment(ctx context.Context) (*order.Order, error)

	// GetAllInProgress retrieves all orders currently assigned to tailors.
	// Returns orders that are in production but not yet completed.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}
