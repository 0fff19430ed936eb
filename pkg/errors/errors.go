package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes, one per exit status the tool can report
const (
	ErrUnknown    ErrorCode = "UNKNOWN"
	ErrUsage      ErrorCode = "USAGE"
	ErrIO         ErrorCode = "IO"
	ErrData       ErrorCode = "DATA"
	ErrCantCreate ErrorCode = "CANT_CREATE"
	ErrInternal   ErrorCode = "INTERNAL"
)

// Exit statuses, using the sysexits.h values shells expect
const (
	ExitOK         = 0
	ExitUsage      = 64
	ExitDataErr    = 65
	ExitSoftware   = 70
	ExitCantCreate = 73
	ExitIOErr      = 74
)

var exitCodes = map[ErrorCode]int{
	ErrUsage:      ExitUsage,
	ErrData:       ExitDataErr,
	ErrInternal:   ExitSoftware,
	ErrCantCreate: ExitCantCreate,
	ErrIO:         ExitIOErr,
}

// TempleError represents a structured error with code and details
type TempleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TempleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TempleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TempleError) Is(target error) bool {
	var targetErr *TempleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TempleError with the given code and message
func New(code ErrorCode, message string) *TempleError {
	return &TempleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TempleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TempleError {
	return &TempleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TempleError
func Wrap(err error, code ErrorCode, message string) *TempleError {
	if err == nil {
		return nil
	}
	return &TempleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TempleError {
	if err == nil {
		return nil
	}
	return &TempleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TempleError) WithDetail(key string, value interface{}) *TempleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var templeErr *TempleError
	if errors.As(err, &templeErr) {
		return templeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TempleError
func GetErrorCode(err error) ErrorCode {
	var templeErr *TempleError
	if errors.As(err, &templeErr) {
		return templeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TempleError
func GetErrorDetails(err error) map[string]interface{} {
	var templeErr *TempleError
	if errors.As(err, &templeErr) {
		return templeErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status. A nil error is success;
// errors that carry no known code are reported as internal software errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if code, ok := exitCodes[GetErrorCode(err)]; ok {
		return code
	}
	return ExitSoftware
}

// Message renders err for a user: the message chain without code tags.
func Message(err error) string {
	if err == nil {
		return ""
	}
	templeErr, ok := err.(*TempleError)
	if !ok {
		return err.Error()
	}
	if templeErr.Wrapped == nil {
		return templeErr.Message
	}
	inner := Message(templeErr.Wrapped)
	if templeErr.Message == "" {
		return inner
	}
	return templeErr.Message + ": " + inner
}
