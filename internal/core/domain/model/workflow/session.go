package workflow

import (
	"errors"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// Domain errors for session operations.
var (
	// ErrSessionIsNotConstructed is returned when using an improperly initialized Session.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
	// ErrNoActiveComposition is returned when committing while the composition slot is idle.
	// It indicates a sequencing bug in the caller, not a user-facing condition.
	ErrNoActiveComposition = errors.New("no active composition to commit")
	// ErrCustomerIsRequired is returned when finalizing a session without a selected customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
	// ErrItemsAreRequired is returned when finalizing a session with no committed items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// slotState enumerates the composition slot variants.
type slotState int

const (
	// slotIdle means no item is being composed or edited.
	slotIdle slotState = iota
	// slotComposing means a fresh item is being composed.
	slotComposing
	// slotEditing means a committed item is loaded for editing.
	slotEditing
)

// slot is the composition slot: the single active ItemDesign being created
// or edited. index is meaningful only in the slotEditing state, so the
// editing index cannot exist without a design loaded alongside it.
type slot struct {
	state  slotState
	design order.ItemDesign
	index  int
}

// Session holds the in-progress state of one order being created or edited.
//
// Key responsibilities:
//   - Tracking the selected customer and courier preference
//   - Holding committed item designs in display order
//   - Managing the composition slot through compose, edit, and commit
//   - Reconciling re-entry when a submitted order is reopened for editing
//
// Business rules:
//   - Switching to a different customer clears items, the composition slot,
//     and any originating-order linkage; re-selecting the same customer keeps them
//   - At most one item is composed or edited at a time
//   - An editing index is never left pointing at a removed or shifted item:
//     any removal clears the slot outright
//
// All operations are synchronous and either fully apply or fully decline.
// Every mutator rejects a zero-value session with ErrSessionIsNotConstructed.
type Session struct {
	// customer is the selected customer, nil while none is chosen
	customer *customer.Customer
	// courierRequested records whether the customer wants courier delivery
	courierRequested bool
	// items are the committed item designs, insertion order significant
	items []order.ItemDesign
	// composition is the active design slot
	composition slot
	// originatingOrderID links the session to a previously submitted order, nil for new orders
	originatingOrderID *kernel.UUID
	// returnPath is the navigation target to resume after the session concludes
	returnPath string
	// guard ensures the session was properly constructed
	guard guard.ConstructorGuard
}

// NewSession creates an empty Session ready for the order creation flow.
func NewSession() *Session {
	return &Session{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Session was properly constructed using a constructor.
// The zero value of Session is invalid and will fail this validation.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// Customer returns the selected customer, nil while none is chosen.
func (s *Session) Customer() *customer.Customer {
	return s.customer
}

// CourierRequested reports whether courier delivery is requested.
func (s *Session) CourierRequested() bool {
	return s.courierRequested
}

// Items returns the committed item designs in display order.
// The returned designs are deep copies.
func (s *Session) Items() []order.ItemDesign {
	items := make([]order.ItemDesign, len(s.items))
	for i, item := range s.items {
		items[i] = item.Clone()
	}
	return items
}

// ItemCount returns the number of committed item designs.
func (s *Session) ItemCount() int {
	return len(s.items)
}

// ActiveDesign returns a deep copy of the design in the composition slot.
// The second return value is false while the slot is idle.
func (s *Session) ActiveDesign() (order.ItemDesign, bool) {
	if s.composition.state == slotIdle {
		return order.ItemDesign{}, false
	}
	return s.composition.design.Clone(), true
}

// EditingItemIndex returns the index of the item loaded for editing.
// The second return value is false unless the slot is in the editing state.
func (s *Session) EditingItemIndex() (int, bool) {
	if s.composition.state != slotEditing {
		return 0, false
	}
	return s.composition.index, true
}

// OriginatingOrderID returns the identifier of the order this session edits.
// The second return value is false for a new-order session.
func (s *Session) OriginatingOrderID() (kernel.UUID, bool) {
	if s.originatingOrderID == nil {
		return kernel.UUID{}, false
	}
	return *s.originatingOrderID, true
}

// ReturnPath returns the navigation target to resume after the session
// concludes, empty when none is set.
func (s *Session) ReturnPath() string {
	return s.returnPath
}

// SetCustomer replaces the selected customer. Passing nil deselects.
//
// Changing to a different customer identity clears the committed items, the
// composition slot, the originating-order linkage, and the return path:
// items are scoped to the order being built for one customer. Re-selecting
// the same customer leaves all of them untouched.
func (s *Session) SetCustomer(c *customer.Customer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if c != nil {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	if !s.sameCustomerIdentity(c) {
		s.items = nil
		s.composition = slot{}
		s.originatingOrderID = nil
		s.returnPath = ""
	}
	s.customer = c
	return nil
}

// SetActiveDesign loads a design into the composition slot for fresh
// composition, discarding any editing state.
func (s *Session) SetActiveDesign(design order.ItemDesign) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := design.Validate(); err != nil {
		return err
	}

	s.composition = slot{state: slotComposing, design: design.Clone()}
	return nil
}

// ClearActiveDesign returns the composition slot to idle, discarding any
// in-progress design and editing state.
func (s *Session) ClearActiveDesign() error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.composition = slot{}
	return nil
}

// StartEditingItem loads a deep copy of the item at the given index into the
// composition slot and records the index for the subsequent commit. Mutating
// the copy does not affect the committed item until CommitActiveDesign.
//
// Returns an out-of-range error and leaves the session unchanged if the
// index does not address a committed item.
func (s *Session) StartEditingItem(index int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if index < 0 || index >= len(s.items) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(s.items)-1)
	}

	s.composition = slot{
		state:  slotEditing,
		design: s.items[index].Clone(),
		index:  index,
	}
	return nil
}

// CommitActiveDesign finishes the active composition with the given design.
// In the editing state the design replaces the item being edited; in the
// composing state it is appended to the items. The slot returns to idle.
//
// Returns ErrNoActiveComposition while the slot is idle.
func (s *Session) CommitActiveDesign(design order.ItemDesign) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := design.Validate(); err != nil {
		return err
	}

	switch s.composition.state {
	case slotEditing:
		s.items[s.composition.index] = design.Clone()
	case slotComposing:
		s.items = append(s.items, design.Clone())
	default:
		return ErrNoActiveComposition
	}

	s.composition = slot{}
	return nil
}

// RemoveItem removes the item at the given index. Any active editing state
// is cleared outright, never re-pointed, so the editor can no longer
// reference a shifted or removed slot.
//
// Returns an out-of-range error and leaves the session unchanged if the
// index does not address a committed item.
func (s *Session) RemoveItem(index int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if index < 0 || index >= len(s.items) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(s.items)-1)
	}

	s.items = append(s.items[:index], s.items[index+1:]...)
	if s.composition.state == slotEditing {
		s.composition = slot{}
	}
	return nil
}

// SetCourierPreference records whether the customer wants courier delivery.
func (s *Session) SetCourierPreference(courierRequested bool) error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.courierRequested = courierRequested
	return nil
}

// SetReturnPath records the navigation target to resume after the session
// concludes. An empty path clears it.
func (s *Session) SetReturnPath(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.returnPath = path
	return nil
}

// LoadForEditing replaces the entire session state from a previously
// submitted order: customer, items, and courier flag come from the order,
// the composition slot is idle, and the session is linked back to the order
// so submission updates it. Any in-progress state is discarded.
func (s *Session) LoadForEditing(o *order.Order, c *customer.Customer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	orderID := o.ID()
	s.customer = c
	s.courierRequested = o.CourierRequested()
	s.items = o.Items()
	s.composition = slot{}
	s.originatingOrderID = &orderID
	s.returnPath = "/orders/" + orderID.String()
	return nil
}

// Reset returns the session to its empty initial state, discarding all
// accumulated work. Called after successful submission or explicit
// cancellation. A zero-value session cannot be revived through Reset; it
// must go through NewSession.
func (s *Session) Reset() error {
	if err := s.Validate(); err != nil {
		return err
	}

	*s = Session{
		guard: guard.NewConstructorGuard(),
	}
	return nil
}

// Draft is the self-consistent hand-off shape a session produces at
// submission time. OriginatingOrderID is nil for a new order.
type Draft struct {
	CustomerID         kernel.UUID
	CourierRequested   bool
	Items              []order.ItemDesign
	OriginatingOrderID *kernel.UUID
}

// Draft materializes the session into a submission draft. The items are
// deep copies, so the session can be reset without invalidating the draft.
//
// Fails when no customer is selected or no items were committed; an
// in-progress composition is not part of the draft.
func (s *Session) Draft() (Draft, error) {
	if err := s.Validate(); err != nil {
		return Draft{}, err
	}
	if s.customer == nil {
		return Draft{}, ErrCustomerIsRequired
	}
	if len(s.items) == 0 {
		return Draft{}, ErrItemsAreRequired
	}

	var originatingOrderID *kernel.UUID
	if s.originatingOrderID != nil {
		id := *s.originatingOrderID
		originatingOrderID = &id
	}

	return Draft{
		CustomerID:         s.customer.ID(),
		CourierRequested:   s.courierRequested,
		Items:              s.Items(),
		OriginatingOrderID: originatingOrderID,
	}, nil
}

// sameCustomerIdentity reports whether the given customer has the same
// identity as the currently selected one. Two absent customers match.
func (s *Session) sameCustomerIdentity(c *customer.Customer) bool {
	if s.customer == nil || c == nil {
		return s.customer == nil && c == nil
	}
	return s.customer.IsEqual(c)
}
