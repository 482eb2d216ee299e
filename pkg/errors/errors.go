package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Dispatch errors
	ErrNullInput            ErrorCode = "NULL_INPUT"
	ErrUnsupported          ErrorCode = "UNSUPPORTED"
	ErrUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
	ErrAggregate            ErrorCode = "AGGREGATE"
	ErrModuleFailure        ErrorCode = "MODULE_FAILURE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// ModulifyError represents a structured error with code and details
type ModulifyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
	// Causes holds every underlying failure of an aggregate, in the
	// order they happened.
	Causes []error
}

// Error implements the error interface
func (e *ModulifyError) Error() string {
	if len(e.Causes) > 0 {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, errors.Join(e.Causes...))
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error and every aggregated cause so that
// errors.Is and errors.As reach all of them.
func (e *ModulifyError) Unwrap() []error {
	var out []error
	if e.Wrapped != nil {
		out = append(out, e.Wrapped)
	}
	return append(out, e.Causes...)
}

// Is implements errors.Is interface
func (e *ModulifyError) Is(target error) bool {
	var targetErr *ModulifyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModulifyError with the given code and message
func New(code ErrorCode, message string) *ModulifyError {
	return &ModulifyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModulifyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModulifyError {
	return &ModulifyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModulifyError
func Wrap(err error, code ErrorCode, message string) *ModulifyError {
	if err == nil {
		return nil
	}
	return &ModulifyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModulifyError {
	if err == nil {
		return nil
	}
	return &ModulifyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Aggregate collects several failures into a single ErrAggregate error.
// The causes keep their order. Returns nil when causes is empty.
func Aggregate(message string, causes []error) *ModulifyError {
	if len(causes) == 0 {
		return nil
	}
	kept := make([]error, len(causes))
	copy(kept, causes)
	return &ModulifyError{
		Code:    ErrAggregate,
		Message: message,
		Details: map[string]interface{}{"count": len(kept)},
		Causes:  kept,
	}
}

// WithDetail adds a detail to the error
func (e *ModulifyError) WithDetail(key string, value interface{}) *ModulifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ModulifyError) WithDetails(details map[string]interface{}) *ModulifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var modErr *ModulifyError
	if errors.As(err, &modErr) {
		return modErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModulifyError
func GetErrorCode(err error) ErrorCode {
	var modErr *ModulifyError
	if errors.As(err, &modErr) {
		return modErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ModulifyError
func GetErrorDetails(err error) map[string]interface{} {
	var modErr *ModulifyError
	if errors.As(err, &modErr) {
		return modErr.Details
	}
	return nil
}

// GetCauses returns the aggregated causes of an error, or nil if it has none
func GetCauses(err error) []error {
	var modErr *ModulifyError
	if errors.As(err, &modErr) {
		return modErr.Causes
	}
	return nil
}
