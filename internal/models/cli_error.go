package models

import "fmt"

// ErrorCode is a string type for consistent CLI error codes.
type ErrorCode string

// Predefined error codes for the fatal conditions an invocation can hit.
const (
	// Usage
	ErrorCodeUsage ErrorCode = "usage"

	// Validation
	ErrorCodeInvalidProbe    ErrorCode = "invalid_probe"
	ErrorCodeInvalidDayCount ErrorCode = "invalid_day_count"

	// Dispatch
	ErrorCodePassword  ErrorCode = "password"
	ErrorCodeTransport ErrorCode = "transport"
)

// CLIError is the error type every fatal condition is reported as.
type CLIError struct {
	Code     ErrorCode // machine-readable code
	Message  string    // human-readable error message
	Err      error     // underlying cause, may be nil
	ExitCode int       // process exit status
}

// Error makes CLIError implement the error interface.
func (e CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError is a constructor for CLIError.
func NewCLIError(code ErrorCode, message string, err error, exitCode int) CLIError {
	return CLIError{
		Code:     code,
		Message:  message,
		Err:      err,
		ExitCode: exitCode,
	}
}
