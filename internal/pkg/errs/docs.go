// Package errs defines the error taxonomy shared by the domain model,
// the application layer, and the adapters.
//
// Each error kind pairs a sentinel variable with a struct type:
//   - ErrValueIsRequired / ValueIsRequiredError: a required value is missing
//   - ErrValueIsInvalid / ValueIsInvalidError: a value fails validation
//   - ErrValueIsOutOfRange / ValueIsOutOfRangeError: a value violates its bounds
//   - ErrObjectNotFound / ObjectNotFoundError: a lookup found nothing
//   - ErrVersionIsInvalid / VersionIsInvalidError: an aggregate version mismatch
//
// The struct types carry the parameter name and, where useful, the offending
// value and an optional cause; their Unwrap methods return the matching
// sentinel so callers classify errors with errors.Is without depending on
// concrete types. Constructors exist with and without a cause.
//
// Adapters rely on this classification to map domain failures to transport
// codes, for example ErrObjectNotFound to HTTP 404.
package errs
