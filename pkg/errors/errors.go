package errors

import (
	stdErrors "errors"
	"fmt"
)

// Code classifies an error for callers that need to branch on outcome.
type Code string

const (
	// CodeValidation covers missing, blank, or otherwise rejected input.
	// The store is always left unchanged when it is returned.
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeNotFound is returned when an operation targets an unknown record id.
	CodeNotFound Code = "NOT_FOUND"
	// CodeStateConflict guards one-way workflow transitions, such as
	// approving an order that is no longer pending.
	CodeStateConflict Code = "STATE_CONFLICT"
	// CodeInternal is the fallback for wiring mistakes.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is the typed error carried across the domain services.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

// WithDetails attaches structured context, typically a field→message map
// from the validator.
func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As unwraps err into a typed *Error, or nil when the chain has none.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsValidation reports whether err carries CodeValidation anywhere in its
// chain.
func IsValidation(err error) bool {
	typed := As(err)
	return typed != nil && typed.Code() == CodeValidation
}
