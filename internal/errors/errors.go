// Package errors provides standardized error types for the proxysite CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the deployment sequence.
//
// # Error Types
//
// DeployError is the primary error type, containing:
//   - Code: Categorizes the error (INPUT, IO_PERMISSION, VALIDATION, etc.)
//   - Message: Human-readable error description
//   - Path: The filesystem path involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Usage
//
// Creating stage-specific errors:
//
//	// Missing required input
//	return errors.Input("server name is required")
//
//	// Filesystem failure, classified from the underlying error
//	return errors.IO(path, err)
//
//	// Validation or reload failure carrying the tool's diagnostic
//	return errors.ValidationFailed(diagnostic)
//	return errors.ReloadFailed(diagnostic)
//
// # Error Checking
//
// Use errors.Is for sentinel comparison:
//
//	if errors.Is(err, errors.ErrPermissionDenied) {
//	    // Handle permission case
//	}
//
// Use errors.As for type assertion:
//
//	var depErr *errors.DeployError
//	if errors.As(err, &depErr) {
//	    fmt.Printf("Error code: %s\n", depErr.Code)
//	}
package errors

import (
	"errors"
	"fmt"
	"os"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeInput        ErrorCode = "INPUT"         // Missing or invalid input
	ErrCodeIOPermission ErrorCode = "IO_PERMISSION" // Filesystem permission denied
	ErrCodeIONotFound   ErrorCode = "IO_NOT_FOUND"  // Filesystem path not found
	ErrCodeIOOther      ErrorCode = "IO_OTHER"      // Other filesystem failure
	ErrCodeValidation   ErrorCode = "VALIDATION"    // Configuration test failed
	ErrCodeReload       ErrorCode = "RELOAD"        // Service reload failed
	ErrCodeConfig       ErrorCode = "CONFIG"        // Defaults file error
	ErrCodeInternal     ErrorCode = "INTERNAL"      // Internal/unexpected error
)

// DeployError represents a structured error with context about the operation.
type DeployError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Path    string    // Filesystem path (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *DeployError) Error() string {
	if e.Path != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *DeployError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *DeployError) Is(target error) bool {
	t, ok := target.(*DeployError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates a required input is missing or malformed.
	ErrInvalidInput = &DeployError{Code: ErrCodeInput, Message: "invalid input"}

	// ErrPermissionDenied indicates insufficient filesystem privileges.
	ErrPermissionDenied = &DeployError{Code: ErrCodeIOPermission, Message: "permission denied"}

	// ErrPathNotFound indicates a required path does not exist.
	ErrPathNotFound = &DeployError{Code: ErrCodeIONotFound, Message: "path not found"}

	// ErrValidationFailed indicates the configuration test rejected the active set.
	ErrValidationFailed = &DeployError{Code: ErrCodeValidation, Message: "configuration test failed"}

	// ErrReloadFailed indicates the service reload did not complete.
	ErrReloadFailed = &DeployError{Code: ErrCodeReload, Message: "service reload failed"}

	// ErrConfigInvalid indicates the defaults file is invalid or unreadable.
	ErrConfigInvalid = &DeployError{Code: ErrCodeConfig, Message: "invalid configuration file"}
)

// Input creates an error for missing or invalid user input.
func Input(msg string) error {
	return &DeployError{
		Code:    ErrCodeInput,
		Message: msg,
	}
}

// IO creates a filesystem error for the given path, classifying the
// underlying error into permission / not-found / other.
func IO(path string, err error) error {
	code := ErrCodeIOOther
	msg := "filesystem operation failed"
	switch {
	case os.IsPermission(err):
		code = ErrCodeIOPermission
		msg = "permission denied"
	case os.IsNotExist(err):
		code = ErrCodeIONotFound
		msg = "path not found"
	}
	return &DeployError{
		Code:    code,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// ValidationFailed creates an error carrying the configuration test diagnostic.
func ValidationFailed(diagnostic string) error {
	return &DeployError{
		Code:    ErrCodeValidation,
		Message: diagnostic,
	}
}

// ReloadFailed creates an error carrying the service reload diagnostic.
func ReloadFailed(diagnostic string) error {
	return &DeployError{
		Code:    ErrCodeReload,
		Message: diagnostic,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &DeployError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
