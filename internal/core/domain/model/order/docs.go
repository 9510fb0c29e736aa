// Package order provides domain entities and business logic for tailoring
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, contents, and lifecycle
//   - ItemDesign: A value object describing one garment within an order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, a customer, and at least one item
//   - Order status follows a defined workflow: AwaitingAssignment -> InProgress -> Completed
//   - Orders can be reassigned to a different tailor while InProgress
//   - Orders can only be completed when InProgress
//   - Each item carries at most five reference images; excess images are truncated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
