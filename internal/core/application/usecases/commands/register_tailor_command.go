package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrRegisterTailorCommandIsNotConstructed = errors.New(
		"RegisterTailorCommand must be created via NewRegisterTailorCommand constructor",
	)
	ErrTailorNameIsRequired = errors.New("tailor name is required")
)

// RegisterTailorCommand represents a request to add a tailor to the roster.
// A tailor with no specialties is a generalist and can take any order.
//
// Example:
//
//	tailorID := kernel.NewUUID()
//	cmd, err := NewRegisterTailorCommand(tailorID, "Chinedu Eze", []kernel.UUID{agbadaStyleID})
//	if err != nil {
//	    return fmt.Errorf("invalid tailor data: %w", err)
//	}
//
//	handler := NewRegisterTailorCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register tailor: %w", err)
//	}
type RegisterTailorCommand struct { //nolint:recvcheck //using for validation
	tailorID          kernel.UUID
	name              string
	specialtyStyleIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterTailorCommand creates a command to add a tailor to the roster.
// Validates that the tailor ID and every specialty style ID are valid and
// the name is not empty.
func NewRegisterTailorCommand(
	tailorID kernel.UUID,
	name string,
	specialtyStyleIDs []kernel.UUID,
) (RegisterTailorCommand, error) {
	cmd := RegisterTailorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTailorID(tailorID),
		cmd.setName(name),
		cmd.setSpecialtyStyleIDs(specialtyStyleIDs),
	); err != nil {
		return RegisterTailorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterTailorCommandIsNotConstructed if validation fails.
func (c RegisterTailorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTailorCommandIsNotConstructed)
}

// TailorID returns the unique identifier for the tailor.
func (c RegisterTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// Name returns the tailor's name.
func (c RegisterTailorCommand) Name() string {
	return c.name
}

// SpecialtyStyleIDs returns the styles the tailor covers, empty for a generalist.
func (c RegisterTailorCommand) SpecialtyStyleIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.specialtyStyleIDs))
	copy(ids, c.specialtyStyleIDs)
	return ids
}

func (c *RegisterTailorCommand) setTailorID(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	c.tailorID = tailorID
	return nil
}

func (c *RegisterTailorCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrTailorNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterTailorCommand) setSpecialtyStyleIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.specialtyStyleIDs = make([]kernel.UUID, len(ids))
	copy(c.specialtyStyleIDs, ids)
	return nil
}
