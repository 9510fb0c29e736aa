// Package services contains domain services implementing business logic
// that spans multiple aggregates.
//
// Domain services coordinate operations between aggregates while keeping
// the business rules inside the domain layer. The central service here is
// TailorDispatcher, which matches awaiting orders against the tailor roster
// and executes the assignment workflow across both aggregates.
package services
