package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"
)

var (
	ErrNoFreeTailorsFound = errors.New("no free tailors found")
	ErrNoOrderFound       = errors.New("no order found")
)

// AssignTailorCommandHandler orchestrates the tailor assignment process.
// Finds awaiting orders and matches them with available tailors using business rules.
// Ensures transactional consistency when updating both order and tailor states.
//
// Example:
//
//	handler := NewAssignTailorCommandHandler(uowFactory)
//	cmd := NewAssignTailorCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No awaiting orders")
//	case errors.Is(err, ErrNoFreeTailorsFound):
//	    log.Println("All tailors are fully booked")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Tailor assigned successfully")
//	}
type AssignTailorCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewAssignTailorCommandHandler creates a handler for tailor assignment operations.
// Requires a ProductionUoWFactory for coordinating transactional updates across repositories.
func NewAssignTailorCommandHandler(uowFactory ProductionUoWFactory) AssignTailorCommandHandler {
	return AssignTailorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tailor assignment command.
// Retrieves the first awaiting order, finds available tailors, and uses
// TailorDispatcher to select the best match. Updates both entities within a
// single transaction. Returns specific errors for no orders (ErrNoOrderFound)
// or no tailors (ErrNoFreeTailorsFound).
func (h AssignTailorCommandHandler) Handle(ctx context.Context, command AssignTailorCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tailorRepo := uow.TailorRepository()
	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.GetFirstInAwaitingAssignment(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	tailors, err := tailorRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(tailors) == 0 {
		return ErrNoFreeTailorsFound
	}

	assignedTailor, err := services.NewTailorDispatcher().Dispatch(aggregate, tailors)
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = tailorRepo.Update(ctx, assignedTailor); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
