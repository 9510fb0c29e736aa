package customer

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through the NewCustomer factory method.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a customer without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrEmailIsInvalid is returned when the email has no "@" separator.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPhoneIsRequired is returned when attempting to create a customer without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Customer represents a client of the atelier. It is an aggregate root holding
// the contact information used across order intake, fitting appointments, and
// delivery.
//
// Customer follows these invariants:
//   - Must have a valid unique identifier
//   - Name, email, and phone are required; address is optional
//   - Email must contain an "@" separator
//   - Can only be created through NewCustomer or RestoreCustomer
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with validation. This is the only way to
// create a valid Customer besides RestoreCustomer for persistence rehydration.
//
// Example:
//
//	c, err := customer.NewCustomer(kernel.NewUUID(), "Amara Okafor",
//	    "amara@example.com", "+2348012345678", "12 Bode Thomas St, Lagos")
//	if err != nil {
//	    // Handle validation error
//	}
func NewCustomer(id kernel.UUID, name, email, phone, address string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	c.address = strings.TrimSpace(address)
	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
// It applies the same validation as NewCustomer.
func RestoreCustomer(id kernel.UUID, name, email, phone, address string) (*Customer, error) {
	return NewCustomer(id, name, email, phone, address)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's full name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address. May be empty.
func (c *Customer) Address() string {
	return c.address
}

// UpdateContact replaces the customer's contact details.
// Email and phone remain required; address may be cleared by passing "".
func (c *Customer) UpdateContact(email, phone, address string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return err
	}

	c.address = strings.TrimSpace(address)
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
