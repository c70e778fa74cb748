package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound      = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation    = new(ErrCodeValidation, "validation error")
	ErrHTTPClient    = new(ErrCodeHTTPClient, "http client error")
	ErrSystem        = new(ErrCodeSystemError, "system error")
	ErrCancelled     = new(ErrCodeCancelled, "operation cancelled")

	// maps errors to process exit codes
	exitCodeMap = map[error]int{
		ErrValidation: 2,
		ErrNotFound:   3,
		ErrCancelled:  130,
	}
)

const (
	ErrCodeHTTPClient    = "http_client_error"
	ErrCodeSystemError   = "system_error"
	ErrCodeNotFound      = "not_found"
	ErrCodeAlreadyExists = "already_exists"
	ErrCodeValidation    = "validation_error"
	ErrCodeCancelled     = "cancelled"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

// New creates a new InternalError with the given code
func New(code string, message string) *InternalError {
	return new(code, message)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

// IsCancelled checks if the user aborted an interactive operation
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// ExitCodeFromErr maps an error to the process exit status used by the CLI
func ExitCodeFromErr(err error) int {
	if err == nil {
		return 0
	}
	for e, code := range exitCodeMap {
		if errors.Is(err, e) {
			return code
		}
	}
	return 1
}
