package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTailorsQueryHandler retrieves all tailor information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllTailorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTailorsQueryHandler creates a handler for tailor retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllTailorsQueryHandler(db *gorm.DB) GetAllTailorsQueryHandler {
	return GetAllTailorsQueryHandler{db: db}
}

// Handle executes the query to retrieve all tailors.
// Returns a slice of tailor read models sorted by name.
func (h GetAllTailorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllTailorsQuery,
) ([]GetAllTailorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tailors := make([]GetAllTailorsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			capacity,
			active_orders
		FROM tailors
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tailor GetAllTailorsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&tailor.Name,
			&tailor.Capacity,
			&tailor.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		tailorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		tailor.ID = tailorID
		tailors = append(tailors, tailor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tailors, nil
}
