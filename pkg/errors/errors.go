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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Setup errors (fatal: abort the whole run)
	ErrInputAccess  ErrorCode = "INPUT_ACCESS"
	ErrOutputAccess ErrorCode = "OUTPUT_ACCESS"
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"

	// Per-file errors (reported, entry skipped, run continues)
	ErrDetectFailed  ErrorCode = "DETECT_FAILED"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrLinkRead      ErrorCode = "LINK_READ"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrFileCopy      ErrorCode = "FILE_COPY"
	ErrRestoreMarker ErrorCode = "RESTORE_MARKER"
)

// ClassifilesError represents a structured error with code and details
type ClassifilesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ClassifilesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ClassifilesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ClassifilesError) Is(target error) bool {
	var targetErr *ClassifilesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ClassifilesError with the given code and message
func New(code ErrorCode, message string) *ClassifilesError {
	return &ClassifilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ClassifilesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ClassifilesError {
	return &ClassifilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ClassifilesError
func Wrap(err error, code ErrorCode, message string) *ClassifilesError {
	if err == nil {
		return nil
	}
	return &ClassifilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ClassifilesError {
	if err == nil {
		return nil
	}
	return &ClassifilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ClassifilesError) WithDetail(key string, value interface{}) *ClassifilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cfErr *ClassifilesError
	if errors.As(err, &cfErr) {
		return cfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ClassifilesError
func GetErrorCode(err error) ErrorCode {
	var cfErr *ClassifilesError
	if errors.As(err, &cfErr) {
		return cfErr.Code
	}
	return ErrUnknown
}
