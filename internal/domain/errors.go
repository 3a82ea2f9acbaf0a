package domain

import (
	"errors"
	"fmt"
)

// Error is the typed failure returned by services. The HTTP layer maps
// kinds to status codes; callers inspect kinds instead of matching strings.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// ErrorKind categorizes service errors.
type ErrorKind int

const (
	// ErrValidation indicates a missing or malformed request field.
	ErrValidation ErrorKind = iota
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound
	// ErrInsufficientStock indicates a decrement would cross zero.
	ErrInsufficientStock
	// ErrPersistence indicates an underlying store operation failed.
	ErrPersistence
	// ErrForbidden indicates the caller may not act on the entity.
	ErrForbidden
)

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsValidation returns true if err is a validation error.
func IsValidation(err error) bool { return kindOf(err) == ErrValidation }

// IsNotFound returns true if err is a "not found" error.
func IsNotFound(err error) bool { return kindOf(err) == ErrNotFound }

// IsInsufficientStock returns true if err is a stock-exhaustion error.
func IsInsufficientStock(err error) bool { return kindOf(err) == ErrInsufficientStock }

// IsPersistence returns true if err is a storage failure.
func IsPersistence(err error) bool { return kindOf(err) == ErrPersistence }

// IsForbidden returns true if err is an ownership violation.
func IsForbidden(err error) bool { return kindOf(err) == ErrForbidden }

func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKind(-1)
}

// AsError extracts an *Error from an error chain, or nil.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Error constructors

// ValidationError creates a validation error.
func ValidationError(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// NotFoundError creates a "not found" error.
func NotFoundError(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// InsufficientStockError creates a stock-exhaustion error.
func InsufficientStockError(msg string) *Error {
	return &Error{Kind: ErrInsufficientStock, Message: msg}
}

// ForbiddenError creates an ownership violation error.
func ForbiddenError(msg string) *Error {
	return &Error{Kind: ErrForbidden, Message: msg}
}

// PersistenceError wraps a storage failure.
func PersistenceError(msg string, cause error) *Error {
	return &Error{Kind: ErrPersistence, Message: msg, Cause: cause}
}
