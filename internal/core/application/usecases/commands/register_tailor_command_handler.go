package commands

import (
	"context"

	"atelier/internal/core/domain/model/tailor"
)

// RegisterTailorCommandHandler handles the business logic for roster additions.
// New tailors start with the default capacity and an empty workload.
type RegisterTailorCommandHandler struct {
	uowFactory TailorUoWFactory
}

// NewRegisterTailorCommandHandler creates a handler for tailor registration.
// Requires a TailorUoWFactory for transactional persistence.
func NewRegisterTailorCommandHandler(uowFactory TailorUoWFactory) RegisterTailorCommandHandler {
	return RegisterTailorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tailor registration command.
// Uses a transaction to ensure the tailor is properly persisted or rolled back on error.
func (h *RegisterTailorCommandHandler) Handle(ctx context.Context, cmd RegisterTailorCommand) error {
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

	aggregate, err := tailor.NewTailor(cmd.TailorID(), cmd.Name(), cmd.SpecialtyStyleIDs())
	if err != nil {
		return err
	}

	if err = uow.TailorRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
