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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Styles errors
	ErrStylesLoad ErrorCode = "STYLES_LOAD"

	// Help topic errors
	ErrTopicScan ErrorCode = "TOPIC_SCAN"
)

// TaglogError represents a structured error with code and details
type TaglogError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TaglogError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TaglogError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TaglogError) Is(target error) bool {
	var targetErr *TaglogError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TaglogError with the given code and message
func New(code ErrorCode, message string) *TaglogError {
	return &TaglogError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TaglogError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TaglogError {
	return &TaglogError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TaglogError
func Wrap(err error, code ErrorCode, message string) *TaglogError {
	if err == nil {
		return nil
	}
	return &TaglogError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TaglogError {
	if err == nil {
		return nil
	}
	return &TaglogError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TaglogError) WithDetail(key string, value interface{}) *TaglogError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tlErr *TaglogError
	if errors.As(err, &tlErr) {
		return tlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TaglogError
func GetErrorCode(err error) ErrorCode {
	var tlErr *TaglogError
	if errors.As(err, &tlErr) {
		return tlErr.Code
	}
	return ErrUnknown
}
