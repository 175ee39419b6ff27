package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConvert Category = "convert"
	CategoryConfig  Category = "config"
	CategoryServer  Category = "server"
	CategoryCLI     Category = "cli"
)

// DomifyError is a structured error with a code, suggestion, and
// documentation pointer.
type DomifyError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (convert, config, server, cli).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *DomifyError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *DomifyError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *DomifyError) WithDetail(d string) *DomifyError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *DomifyError) WithDetailf(format string, args ...any) *DomifyError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *DomifyError) WithSuggestion(s string) *DomifyError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *DomifyError) Wrap(err error) *DomifyError {
	e.Wrapped = err
	return e
}

// New creates a DomifyError from a registered error code.
func New(code string) *DomifyError {
	template, ok := registry[code]
	if !ok {
		return &DomifyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &DomifyError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
		DocURL:     template.DocURL,
	}
}

// Newf creates a new DomifyError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *DomifyError {
	return &DomifyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a DomifyError.
func FromError(err error, code string) *DomifyError {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DomifyError); ok {
		return de
	}
	return New(code).Wrap(err)
}
