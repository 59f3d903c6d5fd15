package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeConflict   ErrorCode = "CONFLICT"
	CodeConstraint ErrorCode = "CONSTRAINT_VIOLATION"
	CodeStore      ErrorCode = "STORE_ERROR"
)

// Error is the failure shape every layer reports. Code selects the HTTP
// status at the boundary, Details carries driver-level diagnostics.
type Error struct {
	Code    ErrorCode
	Message string
	Details string
	cause   error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func NewValidationError(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewNotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewConflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewConstraintViolation(msg string, cause error) *Error {
	return &Error{Code: CodeConstraint, Message: msg, Details: cause.Error(), cause: cause}
}

func NewStoreError(msg string, cause error) *Error {
	return &Error{Code: CodeStore, Message: msg, Details: cause.Error(), cause: cause}
}

// CodeOf extracts the taxonomy code from err, treating anything that is not
// a *Error as a store failure.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeStore
}
