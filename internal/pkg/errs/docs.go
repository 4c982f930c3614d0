// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid, including illegal status transitions
//   - ObjectNotFoundError: For when an object cannot be found
//   - OperationIsForbiddenError: For when a caller lacks rights over an entity
//   - ObjectAlreadyExistsError: For uniqueness violations
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels double as the application's error taxonomy: transport adapters
// map them to response codes (not found, forbidden, bad request, conflict)
// without inspecting error strings.
package errs
