package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for error classification via errors.Is.
var (
	ErrObjectNotFound           = errors.New("object not found")
	ErrValueIsInvalid           = errors.New("value is invalid")
	ErrValueIsOutOfRange        = errors.New("value is out of range")
	ErrValueIsRequired          = errors.New("value is required")
	ErrConfigurationMissing     = errors.New("required configuration is missing")
	ErrUnsupportedConfiguration = errors.New("configuration is not supported")
	ErrStateConflict            = errors.New("state transition conflict")
)

// sanitize replaces newlines so error messages stay on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced entity is absent or outside
// the requesting tenant's scope.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a driver-level "record not found".
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that an input value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure that triggered it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its
// permitted interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConfigurationMissingError indicates that tenant configuration required by
// the selected freight strategy is absent (e.g. pricePerDelivery is null).
type ConfigurationMissingError struct {
	ParamName string
	TenantID  string
	Cause     error
}

// NewConfigurationMissingError creates a ConfigurationMissingError without a cause.
func NewConfigurationMissingError(paramName, tenantID string) *ConfigurationMissingError {
	return &ConfigurationMissingError{ParamName: paramName, TenantID: tenantID}
}

// NewConfigurationMissingErrorWithCause creates a ConfigurationMissingError
// wrapping an underlying cause.
func NewConfigurationMissingErrorWithCause(paramName, tenantID string, cause error) *ConfigurationMissingError {
	return &ConfigurationMissingError{ParamName: paramName, TenantID: tenantID, Cause: cause}
}

func (e *ConfigurationMissingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s for tenant %s (cause: %s)",
			ErrConfigurationMissing, e.ParamName, e.TenantID, e.Cause)
	}
	return fmt.Sprintf("%s: %s for tenant %s", ErrConfigurationMissing, e.ParamName, e.TenantID)
}

func (e *ConfigurationMissingError) Unwrap() error {
	return ErrConfigurationMissing
}

// UnsupportedConfigurationError indicates that a tenant configuration value is
// present but not one of the supported enum values (e.g. an unknown freight type).
type UnsupportedConfigurationError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewUnsupportedConfigurationError creates an UnsupportedConfigurationError
// without a cause.
func NewUnsupportedConfigurationError(paramName, value string) *UnsupportedConfigurationError {
	return &UnsupportedConfigurationError{ParamName: paramName, Value: value}
}

// NewUnsupportedConfigurationErrorWithCause creates an
// UnsupportedConfigurationError wrapping an underlying cause.
func NewUnsupportedConfigurationErrorWithCause(paramName, value string, cause error) *UnsupportedConfigurationError {
	return &UnsupportedConfigurationError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *UnsupportedConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %q (cause: %s)",
			ErrUnsupportedConfiguration, e.ParamName, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %q", ErrUnsupportedConfiguration, e.ParamName, e.Value)
}

func (e *UnsupportedConfigurationError) Unwrap() error {
	return ErrUnsupportedConfiguration
}

// StateConflictError indicates an illegal or lost-race state transition.
// It names the entity, its current state and the requested transition so the
// caller can render a precise message or decide to re-read and retry.
type StateConflictError struct {
	Entity         string
	ID             string
	CurrentState   string
	RequestedState string
	Cause          error
}

// NewStateConflictError creates a StateConflictError without a cause.
func NewStateConflictError(entity, id, currentState, requestedState string) *StateConflictError {
	return &StateConflictError{
		Entity:         entity,
		ID:             id,
		CurrentState:   currentState,
		RequestedState: requestedState,
	}
}

// NewStateConflictErrorWithCause creates a StateConflictError wrapping an
// underlying cause, typically a zero-rows-affected optimistic update.
func NewStateConflictErrorWithCause(entity, id, currentState, requestedState string, cause error) *StateConflictError {
	return &StateConflictError{
		Entity:         entity,
		ID:             id,
		CurrentState:   currentState,
		RequestedState: requestedState,
		Cause:          cause,
	}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s is %s, requested %s (cause: %s)",
			ErrStateConflict, e.Entity, e.ID, e.CurrentState, e.RequestedState, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s is %s, requested %s",
		ErrStateConflict, e.Entity, e.ID, e.CurrentState, e.RequestedState)
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}
