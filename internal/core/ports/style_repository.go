package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/style"
)

// StyleRepository defines the persistence contract for the garment style
// catalog. The catalog is small and read-mostly: styles are added by the
// atelier's staff and consulted by the design editor and the style advisor.
type StyleRepository interface {
	// Add persists a new garment style to the catalog.
	// The style must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *style.GarmentStyle) error

	// Get retrieves a garment style by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*style.GarmentStyle, error)

	// GetAll retrieves the full style catalog.
	GetAll(ctx context.Context) ([]*style.GarmentStyle, error)
}
