package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrUnreachable    = errors.New("receiver unreachable")
	ErrTimeout        = errors.New("request timeout")
	ErrUnparseable    = errors.New("response did not match expected shape")
	ErrLookupDeadEnd  = errors.New("lookup found no usable data")
	ErrNoSuchReceiver = errors.New("receiver not found")
	ErrNotConfigured  = errors.New("no receivers configured")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidAddress = errors.New("invalid network address")
)

// StatusError reports a non-success HTTP status from a receiver or an
// upstream service.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// IsStatus returns true if err carries a non-success HTTP status.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// AirwaveError wraps an error with a user-friendly suggestion.
type AirwaveError struct {
	Err        error
	Suggestion string
}

func (e *AirwaveError) Error() string {
	return e.Err.Error()
}

func (e *AirwaveError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &AirwaveError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var awErr *AirwaveError
	if errors.As(err, &awErr) && awErr.Suggestion != "" {
		return awErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrNotConfigured) {
		return "Run 'airwave scan --add' to find receivers on your network"
	}

	if errors.Is(err, ErrNoSuchReceiver) {
		return "Run 'airwave receivers' to see configured receivers"
	}

	if errors.Is(err, ErrUnreachable) || strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no route to host") {
		return "Check that the receiver is powered on and on the same network"
	}

	if errors.Is(err, ErrTimeout) || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return "The receiver did not answer in time. Check your network connection"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) ||
		strings.Contains(errStr, "config") {
		return "Run 'airwave config init' to create a configuration file"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
