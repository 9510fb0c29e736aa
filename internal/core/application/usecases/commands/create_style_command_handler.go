package commands

import (
	"context"

	"atelier/internal/core/domain/model/style"
)

// CreateStyleCommandHandler handles the business logic for adding garment
// styles to the catalog.
type CreateStyleCommandHandler struct {
	uowFactory StyleUoWFactory
}

// NewCreateStyleCommandHandler creates a handler for style catalog additions.
// Requires a StyleUoWFactory for transactional persistence.
func NewCreateStyleCommandHandler(uowFactory StyleUoWFactory) CreateStyleCommandHandler {
	return CreateStyleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the style creation command.
// Uses a transaction to ensure the style is properly persisted or rolled back on error.
func (h *CreateStyleCommandHandler) Handle(ctx context.Context, cmd CreateStyleCommand) error {
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

	aggregate, err := style.NewGarmentStyle(cmd.StyleID(), cmd.Name(), cmd.RequiredMeasurementIDs())
	if err != nil {
		return err
	}

	if err = uow.StyleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
