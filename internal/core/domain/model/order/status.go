package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle state of a tailoring order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct production workflow.
//
// State transitions:
//
//	AwaitingAssignment ──┬──> InProgress ──> Completed
//	                     │        │
//	                     └────────┘
//	          (reassignment allowed)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingAssignment is the initial status when an order is submitted.
	// Orders in this status are waiting to be assigned to a tailor.
	AwaitingAssignment

	// InProgress indicates a tailor is working on the order.
	// Orders can be reassigned to a different tailor while in this status.
	InProgress

	// Completed indicates all garments have been produced and handed over.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		AwaitingAssignment: "AwaitingAssignment",
		InProgress:         "InProgress",
		Completed:          "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		AwaitingAssignment: "AwaitingAssignment",
		InProgress:         "InProgress",
		Completed:          "Completed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: AwaitingAssignment, InProgress, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. Implements the fmt.Stringer
// interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks if the status allows tailor assignment without
// performing the transition.
//
// Valid statuses for assignment:
//   - AwaitingAssignment (initial assignment)
//   - InProgress (reassignment to a different tailor)
//
// Returns an error if assignment is not allowed from the current status.
func (s Status) ValidateAssign() error {
	if s != AwaitingAssignment && s != InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveTailor validates the consistency between order status and
// tailor assignment.
//
// Business rules:
//   - AwaitingAssignment orders must not have a tailor assigned
//   - InProgress and Completed orders must have a tailor assigned
//
// Parameters:
//   - tailor: whether the order has a tailor assigned
func (s Status) ValidateCanHaveTailor(tailor bool) error {
	if tailor && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a tailor", s.String()),
		)
	}

	if !tailor && (s == InProgress || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no tailor", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to InProgress.
//
// Valid transitions:
//   - AwaitingAssignment -> InProgress (initial assignment)
//   - InProgress -> InProgress (reassignment to a different tailor)
//
// Returns (0, error) if the transition is not allowed from the current status.
// This method is used by Order.AssignTailor() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (production finished)
//
// Returns (0, error) if the transition is not allowed from the current status.
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
