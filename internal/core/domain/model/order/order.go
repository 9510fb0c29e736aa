package order

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order without garments.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrShippingAddressIsRequired is returned when courier delivery is requested
	// without a shipping address.
	ErrShippingAddressIsRequired = errs.NewValueIsRequiredError("shippingAddress")
	// ErrOrderIsAlreadyCompleted is returned when amending a completed order.
	ErrOrderIsAlreadyCompleted = errors.New("completed order cannot be amended")
)

// Order represents a tailoring order in the system. It is the aggregate root
// that manages the order lifecycle from submission through tailor assignment
// to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Contains at least one garment (ItemDesign)
//   - Shipping address is required when courier delivery is requested
//   - Status transitions follow defined business rules
//   - Tailor presence is consistent with status (none while awaiting,
//     one while in progress or completed)
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer the order belongs to
	customerID kernel.UUID

	// tailorID is the assigned tailor's ID (nil if unassigned)
	tailorID *kernel.UUID

	// courierRequested indicates the customer wants courier delivery
	courierRequested bool

	// items are the garments in the order, display order significant
	items []ItemDesign

	// shippingAddress is where the finished garments are delivered
	shippingAddress string

	// dueDate is when production is expected to finish
	dueDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in AwaitingAssignment status. This is the only
// way to create a valid Order besides RestoreOrder for rehydration.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The customer the order belongs to
//   - courierRequested: Whether courier delivery was requested
//   - items: The garments (at least one; deep-copied, not aliased)
//   - shippingAddress: Delivery address (required when courierRequested)
//   - dueDate: Server-assigned production deadline
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, true, items,
//	    "12 Bode Thomas St, Lagos", time.Now().AddDate(0, 0, 14))
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	courierRequested bool,
	items []ItemDesign,
	shippingAddress string,
	dueDate time.Time,
) (*Order, error) {
	o := &Order{
		status:        AwaitingAssignment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress, courierRequested),
	); err != nil {
		return nil, err
	}

	o.courierRequested = courierRequested
	o.dueDate = dueDate
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and tailor assignment. It validates that the stored status is legal and
// consistent with the presence of a tailor.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	courierRequested bool,
	items []ItemDesign,
	shippingAddress string,
	dueDate time.Time,
	status Status,
	tailorID *kernel.UUID,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveTailor(tailorID != nil); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, customerID, courierRequested, items, shippingAddress, dueDate)
	if err != nil {
		return nil, err
	}

	o.status = status
	if tailorID != nil {
		if err = tailorID.Validate(); err != nil {
			return nil, err
		}
		tid := *tailorID
		o.tailorID = &tid
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer the order belongs to.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CourierRequested reports whether courier delivery was requested.
func (o *Order) CourierRequested() bool {
	return o.courierRequested
}

// Items returns the garments in the order, display order preserved.
// The returned slice holds deep copies.
func (o *Order) Items() []ItemDesign {
	items := make([]ItemDesign, len(o.items))
	for i, item := range o.items {
		items[i] = item.Clone()
	}
	return items
}

// ShippingAddress returns the delivery address for the finished garments.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// DueDate returns the production deadline.
func (o *Order) DueDate() time.Time {
	return o.dueDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Tailor returns the assigned tailor's ID.
// Returns nil if no tailor is assigned.
func (o *Order) Tailor() *kernel.UUID {
	return o.tailorID
}

// ValidateAssign checks whether the order may currently be assigned to a tailor.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// AssignTailor assigns the order to a tailor and moves it to InProgress.
//
// Business rules:
//   - The tailor ID must be valid
//   - The order must be in AwaitingAssignment or InProgress status
//   - Reassignment is allowed (InProgress to InProgress)
//
// Every item's production-tracking fields are stamped with the tailor and
// the order's due date.
func (o *Order) AssignTailor(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.tailorID = &tailorID
	for i := range o.items {
		o.items[i].assignTo(tailorID, o.dueDate)
	}
	return nil
}

// Complete marks the order as completed.
//
// Business rules:
//   - The order must be InProgress
//   - Completed is a final state with no further transitions
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Amend replaces the order's contents with a re-edited version from the
// workflow. Amending is allowed any time before completion; if a tailor is
// already assigned, the replacement items are re-stamped for that tailor.
func (o *Order) Amend(courierRequested bool, items []ItemDesign, shippingAddress string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status == Completed {
		return ErrOrderIsAlreadyCompleted
	}

	if err := errors.Join(
		o.setItems(items),
		o.setShippingAddress(shippingAddress, courierRequested),
	); err != nil {
		return err
	}

	o.courierRequested = courierRequested
	if o.tailorID != nil {
		for i := range o.items {
			o.items[i].assignTo(*o.tailorID, o.dueDate)
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []ItemDesign) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	copied := make([]ItemDesign, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		copied[i] = item.Clone()
	}

	o.items = copied
	return nil
}

func (o *Order) setShippingAddress(address string, courierRequested bool) error {
	address = strings.TrimSpace(address)
	if courierRequested && address == "" {
		return ErrShippingAddressIsRequired
	}
	o.shippingAddress = address
	return nil
}
