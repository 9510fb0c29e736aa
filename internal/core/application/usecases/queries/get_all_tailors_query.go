package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetAllTailorsQueryIsNotConstructed = errors.New(
	"GetAllTailorsQuery must be created via NewGetAllTailorsQuery constructor",
)

// GetAllTailorsQuery retrieves information about all tailors on the roster.
// Returns tailor identities and workload figures for roster monitoring.
//
// Example:
//
//	query := NewGetAllTailorsQuery()
//	handler := NewGetAllTailorsQueryHandler(db)
//
//	tailors, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve tailors: %w", err)
//	}
//
//	for _, t := range tailors {
//	    fmt.Printf("Tailor %s: %d/%d orders\n", t.Name, t.ActiveOrders, t.Capacity)
//	}
type GetAllTailorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTailorsQuery creates a query to retrieve all tailors.
// This is a parameterless query that fetches the complete roster.
func NewGetAllTailorsQuery() GetAllTailorsQuery {
	return GetAllTailorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllTailorsQueryIsNotConstructed if validation fails.
func (q GetAllTailorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTailorsQueryIsNotConstructed)
}

// GetAllTailorsQueryResponse represents tailor information in the read model.
// Contains identity and workload data for display and roster planning.
type GetAllTailorsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Capacity     int
	ActiveOrders int
}
