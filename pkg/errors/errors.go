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

	// Eligibility errors (rejections before any mutation)
	ErrNoTarget         ErrorCode = "NO_TARGET"
	ErrUnsupportedPath  ErrorCode = "UNSUPPORTED_PATH"
	ErrOutsideWorkspace ErrorCode = "OUTSIDE_WORKSPACE"
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrAlreadyFolder    ErrorCode = "ALREADY_FOLDER"
	ErrHasExtension     ErrorCode = "HAS_EXTENSION"

	// Precondition conflicts
	ErrFolderExists ErrorCode = "FOLDER_EXISTS"

	// User-declined (silent abort, no notification beyond the prompt)
	ErrCancelled ErrorCode = "CANCELLED"

	// Mutation failures
	ErrPermission ErrorCode = "PERMISSION"
	ErrFileDelete ErrorCode = "FILE_DELETE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileMove   ErrorCode = "FILE_MOVE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// FolderizeError represents a structured error with code and details
type FolderizeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FolderizeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FolderizeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FolderizeError) Is(target error) bool {
	var targetErr *FolderizeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FolderizeError with the given code and message
func New(code ErrorCode, message string) *FolderizeError {
	return &FolderizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FolderizeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FolderizeError {
	return &FolderizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FolderizeError
func Wrap(err error, code ErrorCode, message string) *FolderizeError {
	if err == nil {
		return nil
	}
	return &FolderizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FolderizeError {
	if err == nil {
		return nil
	}
	return &FolderizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FolderizeError) WithDetail(key string, value interface{}) *FolderizeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var folderizeErr *FolderizeError
	if errors.As(err, &folderizeErr) {
		return folderizeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FolderizeError
func GetErrorCode(err error) ErrorCode {
	var folderizeErr *FolderizeError
	if errors.As(err, &folderizeErr) {
		return folderizeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FolderizeError
func GetErrorDetails(err error) map[string]interface{} {
	var folderizeErr *FolderizeError
	if errors.As(err, &folderizeErr) {
		return folderizeErr.Details
	}
	return nil
}
