// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves information about all customers.
// Returns customer identities and contact details for the customer book
// and the order workflow's customer selection step.
//
// Example:
//
//	query := NewGetAllCustomersQuery()
//	handler := NewGetAllCustomersQueryHandler(db)
//
//	customers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve customers: %w", err)
//	}
//
//	for _, c := range customers {
//	    fmt.Printf("Customer %s <%s>\n", c.Name, c.Email)
//	}
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to retrieve all customers.
// This is a parameterless query that fetches the complete customer list.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCustomersQueryIsNotConstructed if validation fails.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// GetAllCustomersQueryResponse represents customer information in the read model.
type GetAllCustomersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Email   string
	Phone   string
	Address string
}
