package commands

import (
	"context"
)

// CompleteOrderCommandHandler handles the business logic for order completion.
// Transitions the order to completed status and releases the assigned
// tailor's capacity within a single transaction.
type CompleteOrderCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// Requires a ProductionUoWFactory for coordinating transactional updates
// across the order and tailor repositories.
func NewCompleteOrderCommandHandler(uowFactory ProductionUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order completion command.
// The order must be in progress with a tailor assigned; completing it
// releases one unit of that tailor's capacity.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	tailorRepo := uow.TailorRepository()

	aggregate, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	tailorID := aggregate.Tailor()
	if err = aggregate.Complete(); err != nil {
		return err
	}

	assignedTailor, err := tailorRepo.Get(ctx, *tailorID)
	if err != nil {
		return err
	}

	if err = assignedTailor.ReleaseOrder(); err != nil {
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
