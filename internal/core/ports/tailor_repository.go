package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
)

// TailorRepository defines the persistence contract for tailor aggregates.
// Provides methods for storing, retrieving, and querying roster members
// with their specialties and current workload.
type TailorRepository interface {
	// Add persists a new tailor aggregate to storage.
	// The tailor must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *tailor.Tailor) error

	// Update persists changes to an existing tailor aggregate.
	// The tailor must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *tailor.Tailor) error

	// Get retrieves a tailor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)

	// GetAllAvailable retrieves all tailors with free capacity.
	// A tailor is available while their active order count is below capacity;
	// specialty matching is a domain concern performed by the dispatcher, not
	// by the repository.
	GetAllAvailable(ctx context.Context) ([]*tailor.Tailor, error)
}
