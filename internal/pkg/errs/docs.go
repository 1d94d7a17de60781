// Package errs provides the standardized error taxonomy for the back office.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The taxonomy covers the failure modes of the delivery lifecycle core:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed input to a pure function
//   - ObjectNotFoundError: referenced entity absent or outside tenant scope
//   - ConfigurationMissingError: tenant configuration required by the selected
//     freight strategy is absent
//   - UnsupportedConfigurationError: configuration value is not a known enum value
//   - StateConflictError: illegal or lost-race status transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// StateConflictError is the only error where a caller-level retry is
// meaningful: the caller re-reads current state and re-attempts the
// transition. All other errors are deterministic for a given input.
package errs
