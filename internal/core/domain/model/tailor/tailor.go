package tailor

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// tailorDefaultCapacity is the number of orders a tailor works on concurrently
// unless the roster says otherwise.
const tailorDefaultCapacity = 3

// Domain errors for tailor operations.
var (
	// ErrNameIsRequired is returned when attempting to create a tailor without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCapacityIsRequired is returned when attempting to create a tailor with invalid capacity (≤0).
	ErrCapacityIsRequired = errs.NewValueIsRequiredError("capacity")
	// ErrTailorIsNotConstructed is returned when using an improperly initialized Tailor.
	ErrTailorIsNotConstructed = errors.New("Tailor must be created via NewTailor constructor")
	// ErrTailorIsFullyBooked is returned when taking an order would exceed the tailor's capacity.
	ErrTailorIsFullyBooked = errors.New("tailor is fully booked")
	// ErrTailorLacksSpecialty is returned when the tailor cannot sew any item of the order.
	ErrTailorLacksSpecialty = errors.New("tailor does not cover the order's styles")
	// ErrNoActiveOrders is returned when releasing an order from a tailor with no active work.
	ErrNoActiveOrders = errors.New("tailor has no active orders to release")
)

// Tailor represents a member of the atelier's production roster.
// It is an aggregate root managing tailor identity, specialties, and workload.
//
// Key responsibilities:
//   - Managing tailor identity (ID, name)
//   - Declaring specialty garment styles (empty set means generalist)
//   - Tracking concurrent workload against a fixed capacity
//   - Validating whether an order can be taken before assignment
//
// Business rules:
//   - Tailor must have a valid UUID, non-empty name, and positive capacity
//   - A specialist can only take orders whose items all fall within their specialties
//   - A generalist (no declared specialties) can take any order
//   - Workload never exceeds capacity and never drops below zero
//
// Example usage:
//
//	t, err := NewTailor(kernel.NewUUID(), "Chinedu Eze", []kernel.UUID{agbadaStyleID})
//	if err != nil {
//	    // Handle construction error
//	}
//	// Tailor is ready to take orders
type Tailor struct {
	// id uniquely identifies the tailor
	id kernel.UUID
	// name is the human-readable name of the tailor
	name string
	// specialtyStyleIDs are the garment styles the tailor covers; empty means generalist
	specialtyStyleIDs []kernel.UUID
	// capacity is the maximum number of orders worked on concurrently
	capacity int
	// activeOrders is the number of orders currently assigned
	activeOrders int
	// guard ensures the tailor was properly constructed
	guard guard.ConstructorGuard
}

// NewTailor creates a new Tailor with the default capacity.
// This is the only way to create a valid Tailor besides RestoreTailor.
//
// Parameters:
//   - id: Unique identifier for the tailor (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - specialtyStyleIDs: Styles the tailor covers; empty slice means generalist
//
// Returns:
//   - *Tailor: A fully initialized tailor with zero active orders
//   - error: Validation error if any parameter is invalid
func NewTailor(id kernel.UUID, name string, specialtyStyleIDs []kernel.UUID) (*Tailor, error) {
	t := &Tailor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSpecialties(specialtyStyleIDs),
		t.setCapacity(tailorDefaultCapacity),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTailor reconstructs a Tailor aggregate from persistent storage,
// including its capacity and current workload. The restored tailor behaves
// identically to one created through normal domain operations.
func RestoreTailor(
	id kernel.UUID,
	name string,
	specialtyStyleIDs []kernel.UUID,
	capacity int,
	activeOrders int,
) (*Tailor, error) {
	t := &Tailor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSpecialties(specialtyStyleIDs),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	if activeOrders < 0 || activeOrders > t.capacity {
		return nil, errs.NewValueIsOutOfRangeError("activeOrders", activeOrders, 0, t.capacity)
	}
	t.activeOrders = activeOrders

	return t, nil
}

// Validate checks if the Tailor was properly constructed using a constructor.
// The zero value of Tailor is invalid and will fail this validation.
func (t *Tailor) Validate() error {
	if t == nil {
		return ErrTailorIsNotConstructed
	}
	return t.guard.Validate(ErrTailorIsNotConstructed)
}

// IsEqual compares two tailors by their unique identifiers.
func (t *Tailor) IsEqual(other *Tailor) bool {
	if other == nil {
		return false
	}
	return t.id.IsEqual(other.id)
}

// ID returns the tailor's unique identifier.
func (t *Tailor) ID() kernel.UUID {
	return t.id
}

// Name returns the tailor's name.
func (t *Tailor) Name() string {
	return t.name
}

// SpecialtyStyleIDs returns the styles the tailor covers.
// An empty result means the tailor is a generalist. The returned slice is a copy.
func (t *Tailor) SpecialtyStyleIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(t.specialtyStyleIDs))
	copy(ids, t.specialtyStyleIDs)
	return ids
}

// Capacity returns the maximum number of orders the tailor works on concurrently.
func (t *Tailor) Capacity() int {
	return t.capacity
}

// ActiveOrders returns the number of orders currently assigned to the tailor.
func (t *Tailor) ActiveOrders() int {
	return t.activeOrders
}

// CanTake reports whether the tailor can take the given order.
//
// Returns nil when the order can be taken, otherwise:
//   - ErrTailorIsFullyBooked when the tailor is at capacity
//   - ErrTailorLacksSpecialty when any item's style is outside the tailor's specialties
func (t *Tailor) CanTake(o *order.Order) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if t.activeOrders >= t.capacity {
		return ErrTailorIsFullyBooked
	}

	if !t.coversOrder(o) {
		return ErrTailorLacksSpecialty
	}

	return nil
}

// TakeOrder increments the tailor's workload for the given order.
// Fails with the same errors as CanTake; on success the tailor's
// active order count grows by one.
func (t *Tailor) TakeOrder(o *order.Order) error {
	if err := t.CanTake(o); err != nil {
		return err
	}

	t.activeOrders++
	return nil
}

// ReleaseOrder decrements the tailor's workload after an order completes.
// Returns ErrNoActiveOrders if the tailor has nothing assigned.
func (t *Tailor) ReleaseOrder() error {
	if err := t.Validate(); err != nil {
		return err
	}

	if t.activeOrders == 0 {
		return ErrNoActiveOrders
	}

	t.activeOrders--
	return nil
}

// coversOrder reports whether every item in the order falls within the
// tailor's specialties. Generalists cover everything.
func (t *Tailor) coversOrder(o *order.Order) bool {
	if len(t.specialtyStyleIDs) == 0 {
		return true
	}

	for _, item := range o.Items() {
		covered := false
		for _, specialty := range t.specialtyStyleIDs {
			if specialty.IsEqual(item.StyleID()) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

func (t *Tailor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tailor) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}

func (t *Tailor) setSpecialties(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	t.specialtyStyleIDs = make([]kernel.UUID, len(ids))
	copy(t.specialtyStyleIDs, ids)
	return nil
}

func (t *Tailor) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsRequired
	}
	t.capacity = capacity
	return nil
}
