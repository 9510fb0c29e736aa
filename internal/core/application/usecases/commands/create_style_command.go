package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateStyleCommandIsNotConstructed = errors.New(
		"CreateStyleCommand must be created via NewCreateStyleCommand constructor",
	)
	ErrStyleNameIsRequired         = errors.New("style name is required")
	ErrMeasurementFieldsAreRequired = errors.New("at least one measurement field is required")
)

// CreateStyleCommand represents a request to add a garment style to the
// catalog, together with the measurement fields the style requires.
//
// Example:
//
//	styleID := kernel.NewUUID()
//	cmd, err := NewCreateStyleCommand(styleID, "Agbada", []string{"chest", "sleeve", "length"})
//	if err != nil {
//	    return fmt.Errorf("invalid style data: %w", err)
//	}
//
//	handler := NewCreateStyleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create style: %w", err)
//	}
type CreateStyleCommand struct { //nolint:recvcheck //using for validation
	styleID                kernel.UUID
	name                   string
	requiredMeasurementIDs []string

	guard guard.ConstructorGuard
}

// NewCreateStyleCommand creates a command to add a garment style.
// Validates that the style ID is valid, the name is not empty, and at
// least one measurement field is listed. Field uniqueness is enforced by
// the domain model.
func NewCreateStyleCommand(
	styleID kernel.UUID,
	name string,
	requiredMeasurementIDs []string,
) (CreateStyleCommand, error) {
	cmd := CreateStyleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStyleID(styleID),
		cmd.setName(name),
		cmd.setRequiredMeasurementIDs(requiredMeasurementIDs),
	); err != nil {
		return CreateStyleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStyleCommandIsNotConstructed if validation fails.
func (c CreateStyleCommand) Validate() error {
	return c.guard.Validate(ErrCreateStyleCommandIsNotConstructed)
}

// StyleID returns the unique identifier for the style.
func (c CreateStyleCommand) StyleID() kernel.UUID {
	return c.styleID
}

// Name returns the style's display name.
func (c CreateStyleCommand) Name() string {
	return c.name
}

// RequiredMeasurementIDs returns the measurement fields the style requires.
func (c CreateStyleCommand) RequiredMeasurementIDs() []string {
	ids := make([]string, len(c.requiredMeasurementIDs))
	copy(ids, c.requiredMeasurementIDs)
	return ids
}

func (c *CreateStyleCommand) setStyleID(styleID kernel.UUID) error {
	if err := styleID.Validate(); err != nil {
		return err
	}

	c.styleID = styleID
	return nil
}

func (c *CreateStyleCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrStyleNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStyleCommand) setRequiredMeasurementIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrMeasurementFieldsAreRequired
	}

	c.requiredMeasurementIDs = make([]string, len(ids))
	copy(c.requiredMeasurementIDs, ids)
	return nil
}
