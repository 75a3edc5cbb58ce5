// Package errs provides standardized error types used across the application.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type with fields describing the failure
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for sentinel matching
//
// The stable sentinel plus human-readable message combination keeps errors
// machine-checkable at the adapter boundary while staying useful in logs.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound indicates a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a value failed a validation rule.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrUniquenessConflict indicates a uniqueness constraint was violated.
	// The operation is retryable after the conflicting value is regenerated.
	ErrUniquenessConflict = errors.New("uniqueness conflict")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError reports that an object identified by ID was not found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that a required named value is missing.
type ValueIsRequiredError struct {
	ParamName string
}

// NewValueIsRequiredError creates a ValueIsRequiredError.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func (e *ValueIsRequiredError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// UniquenessConflictError reports a violated uniqueness constraint, carrying
// the conflicting parameter and value for diagnostics.
type UniquenessConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewUniquenessConflictError creates a UniquenessConflictError without a cause.
func NewUniquenessConflictError(paramName string, value any) *UniquenessConflictError {
	return &UniquenessConflictError{ParamName: paramName, Value: value}
}

// NewUniquenessConflictErrorWithCause creates a UniquenessConflictError wrapping a cause.
func NewUniquenessConflictErrorWithCause(paramName string, value any, cause error) *UniquenessConflictError {
	return &UniquenessConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *UniquenessConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %v (cause: %s)",
			ErrUniquenessConflict, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %v", ErrUniquenessConflict, e.ParamName, e.Value))
}

func (e *UniquenessConflictError) Unwrap() error {
	return ErrUniquenessConflict
}
