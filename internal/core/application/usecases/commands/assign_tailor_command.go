package commands

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var ErrAssignTailorCommandIsNotConstructed = errors.New(
	"AssignTailorCommand must be created via NewAssignTailorCommand constructor",
)

// AssignTailorCommand triggers the assignment of an available tailor to an
// awaiting order. This command represents the business operation of matching
// production capacity with orders. It finds the first order awaiting
// assignment and assigns the best suited tailor.
//
// Example:
//
//	cmd := NewAssignTailorCommand()
//	handler := NewAssignTailorCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available tailors: %v", err)
//	}
type AssignTailorCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignTailorCommand creates a new command to trigger tailor assignment.
// This is a parameterless command that initiates the tailor-order matching process.
func NewAssignTailorCommand() AssignTailorCommand {
	return AssignTailorCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignTailorCommandIsNotConstructed if validation fails.
func (c *AssignTailorCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignTailorCommandIsNotConstructed,
	)
}
