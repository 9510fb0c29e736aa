package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one item is required")
)

// SubmitOrderCommand represents the hand-off of a completed workflow session:
// the customer, the courier preference, and the composed item designs. When
// the session was editing a previously submitted order, originatingOrderID
// identifies it and the submission amends that order instead of creating a
// new one.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(kernel.NewUUID(), draft.CustomerID,
//	    draft.CourierRequested, draft.Items, "5 Glover Rd, Ikoyi", draft.OriginatingOrderID)
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	customerID         kernel.UUID
	courierRequested   bool
	items              []order.ItemDesign
	shippingAddress    string
	originatingOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit an order.
// Validates that the order and customer IDs are valid, every item design is
// properly constructed, and at least one item is present. The shipping
// address requirement for courier orders is enforced by the order aggregate.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	courierRequested bool,
	items []order.ItemDesign,
	shippingAddress string,
	originatingOrderID *kernel.UUID,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setOriginatingOrderID(originatingOrderID),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	cmd.courierRequested = courierRequested
	cmd.shippingAddress = strings.TrimSpace(shippingAddress)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order to create.
// Ignored when the command amends an originating order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c SubmitOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CourierRequested reports whether courier delivery is requested.
func (c SubmitOrderCommand) CourierRequested() bool {
	return c.courierRequested
}

// Items returns the composed item designs.
func (c SubmitOrderCommand) Items() []order.ItemDesign {
	items := make([]order.ItemDesign, len(c.items))
	for i, item := range c.items {
		items[i] = item.Clone()
	}
	return items
}

// ShippingAddress returns the delivery address, possibly empty for pickup orders.
func (c SubmitOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// OriginatingOrderID returns the previously submitted order this submission
// amends, nil for a new order.
func (c SubmitOrderCommand) OriginatingOrderID() *kernel.UUID {
	if c.originatingOrderID == nil {
		return nil
	}
	id := *c.originatingOrderID
	return &id
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitOrderCommand) setItems(items []order.ItemDesign) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.ItemDesign, len(items))
	for i, item := range items {
		c.items[i] = item.Clone()
	}
	return nil
}

func (c *SubmitOrderCommand) setOriginatingOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}

	if err := id.Validate(); err != nil {
		return err
	}

	originating := *id
	c.originatingOrderID = &originating
	return nil
}
