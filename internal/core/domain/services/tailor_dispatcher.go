package services

import (
	"errors"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
)

// ErrTailorNotFound is returned when no suitable tailor is available for
// order dispatch. This occurs when either no tailors are provided or none
// of the provided tailors can take the order due to capacity or specialty
// constraints.
var ErrTailorNotFound = errors.New("tailor not found")

// TailorDispatcher is a domain service responsible for finding and assigning
// the best tailor for a production order based on current workload.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Selecting the least loaded tailor whose specialties cover the order
//   - Ensuring atomic order assignment workflow
//
// Business rules:
//   - Orders must be valid and awaiting assignment before dispatch
//   - Tailors must have free capacity and cover every item's style
//   - Selection prioritizes minimum active workload
//   - Order assignment is atomic
//
// Example usage:
//
//	dispatcher := NewTailorDispatcher()
//	tailors := []*tailor.Tailor{tailor1, tailor2, tailor3}
//
//	assignedTailor, err := dispatcher.Dispatch(order, tailors)
//	if errors.Is(err, ErrTailorNotFound) {
//	    // No available tailors for this order
//	    return
//	}
//	if err != nil {
//	    // Handle dispatch failure
//	    return
//	}
//	// Order successfully assigned to assignedTailor
type TailorDispatcher struct{}

// NewTailorDispatcher creates a new TailorDispatcher instance.
func NewTailorDispatcher() TailorDispatcher {
	return TailorDispatcher{}
}

// Dispatch finds the best tailor for a given order and executes the
// assignment workflow.
//
// Parameters:
//   - o: The order to be dispatched (must be valid and awaiting assignment)
//   - tailors: Slice of available tailors to consider
//
// Returns:
//   - *tailor.Tailor: The tailor assigned to the order
//   - error: ErrTailorNotFound if no suitable tailor exists, or other
//     validation/assignment errors
func (d TailorDispatcher) Dispatch(o *order.Order, tailors []*tailor.Tailor) (*tailor.Tailor, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	bestTailor, err := d.findBestTailor(o, tailors)
	if err != nil {
		return nil, err
	}

	if err = bestTailor.TakeOrder(o); err != nil {
		return nil, err
	}

	if err = o.AssignTailor(bestTailor.ID()); err != nil {
		return nil, err
	}

	return bestTailor, nil
}

// findBestTailor searches the provided tailors for the one best suited to
// the given order.
//
// Selection criteria:
//   - Validates tailor construction
//   - Skips tailors that are fully booked or lack a required specialty
//   - Optimizes for minimum active workload
//   - Returns the first tailor in case of ties
func (d TailorDispatcher) findBestTailor(o *order.Order, tailors []*tailor.Tailor) (*tailor.Tailor, error) {
	var bestTailor *tailor.Tailor

	for _, t := range tailors {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		if err := t.CanTake(o); err != nil {
			if errors.Is(err, tailor.ErrTailorIsFullyBooked) ||
				errors.Is(err, tailor.ErrTailorLacksSpecialty) {
				continue
			}
			return nil, err
		}

		if bestTailor == nil || t.ActiveOrders() < bestTailor.ActiveOrders() {
			bestTailor = t
		}
	}

	if bestTailor == nil {
		return nil, ErrTailorNotFound
	}

	return bestTailor, nil
}
