package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"

	// CodeValidation indicates a validation error
	CodeValidation Code = "validation"

	// CodeMissingActor indicates a source combatant was not supplied
	CodeMissingActor Code = "missing_actor"

	// CodeMissingTarget indicates no target combatant was supplied
	CodeMissingTarget Code = "missing_target"

	// CodeInvalidDamageType indicates an unrecognized damage-type key
	CodeInvalidDamageType Code = "invalid_damage_type"

	// CodeMissingAttributeData indicates a combatant lacks the attribute
	// data needed to resolve its governing attribute
	CodeMissingAttributeData Code = "missing_attribute_data"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var dasuErr *Error
	if errors.As(err, &dasuErr) {
		return &Error{
			Code:    dasuErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(dasuErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Helper constructors for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// MissingActor creates a missing actor error
func MissingActor(message string) *Error {
	return New(CodeMissingActor, message)
}

// MissingTarget creates a missing target error
func MissingTarget(message string) *Error {
	return New(CodeMissingTarget, message)
}

// InvalidDamageTypef creates a formatted invalid damage type error
func InvalidDamageTypef(format string, args ...any) *Error {
	return Newf(CodeInvalidDamageType, format, args...)
}

// MissingAttributeData creates a missing attribute data error
func MissingAttributeData(message string) *Error {
	return New(CodeMissingAttributeData, message)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var dasuErr *Error
	if errors.As(err, &dasuErr) {
		return dasuErr.Code == code
	}
	return false
}

// IsMissingActor checks if the error is a missing actor error
func IsMissingActor(err error) bool {
	return Is(err, CodeMissingActor)
}

// IsMissingTarget checks if the error is a missing target error
func IsMissingTarget(err error) bool {
	return Is(err, CodeMissingTarget)
}

// IsInvalidDamageType checks if the error is an invalid damage type error
func IsInvalidDamageType(err error) bool {
	return Is(err, CodeInvalidDamageType)
}

// IsMissingAttributeData checks if the error is a missing attribute data error
func IsMissingAttributeData(err error) bool {
	return Is(err, CodeMissingAttributeData)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var dasuErr *Error
	if errors.As(err, &dasuErr) {
		return dasuErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var dasuErr *Error
	if errors.As(err, &dasuErr) {
		return dasuErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
