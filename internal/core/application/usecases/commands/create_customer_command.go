package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
	ErrCustomerPhoneIsRequired = errors.New("customer phone is required")
)

// CreateCustomerCommand represents a request to register a new customer.
// Encapsulates the customer's identity and contact details.
//
// Example:
//
//	customerID := kernel.NewUUID()
//	cmd, err := NewCreateCustomerCommand(customerID, "Amina Bello", "amina@example.com", "+2348012345678", "")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create customer: %w", err)
//	}
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates that the customer ID is valid and name, email, and phone are
// not empty. Address is optional.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name, email, phone, address string,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	cmd.address = strings.TrimSpace(address)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerCommandIsNotConstructed if validation fails.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's street address, possibly empty.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrCustomerEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.phone = phone
	return nil
}
