package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to update an existing
// customer's contact details. Identity (ID, name) is immutable.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer's contact
// details. Email and phone must be non-empty; address is optional.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	email, phone, address string,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setEmail(email),
		cmd.setPhone(phone),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	cmd.address = strings.TrimSpace(address)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCustomerCommandIsNotConstructed if validation fails.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Email returns the new email address.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the new phone number.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the new street address, possibly empty.
func (c UpdateCustomerCommand) Address() string {
	return c.address
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrCustomerEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *UpdateCustomerCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.phone = phone
	return nil
}
