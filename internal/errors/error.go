package errors

import (
	"fmt"
	"strings"
)

// Category represents the subsystem an error belongs to.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryBuild   Category = "build"
	CategoryPublish Category = "publish"
	CategoryDeploy  Category = "deploy"
	CategoryDev     Category = "dev"
	CategoryCLI     Category = "cli"
)

// Location points at a position in a project file, usually veneer.json.
type Location struct {
	File string
	Line int
}

// String returns the location as file:line, or just the file when no
// line is known.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// VeneerError is a structured error with a stable code, a suggestion,
// and documentation pointers.
type VeneerError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the subsystem the error belongs to.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the project file position the error refers to.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VeneerError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VeneerError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a project file position to the error.
func (e *VeneerError) WithLocation(file string, line int) *VeneerError {
	e.Location = &Location{File: file, Line: line}
	return e
}

// WithLocationFromError extracts a position from a JSON decode error of
// the form "file: line N: message".
func (e *VeneerError) WithLocationFromError(file string, err error) *VeneerError {
	if err == nil {
		return e
	}
	msg := err.Error()
	if idx := strings.Index(msg, "line "); idx >= 0 {
		var line int
		fmt.Sscanf(msg[idx:], "line %d", &line)
		if line > 0 {
			e.Location = &Location{File: file, Line: line}
			return e
		}
	}
	e.Location = &Location{File: file}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VeneerError) WithSuggestion(s string) *VeneerError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *VeneerError) WithDetail(d string) *VeneerError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *VeneerError) Wrap(err error) *VeneerError {
	e.Wrapped = err
	return e
}

// New creates a VeneerError from a registered error code.
func New(code string) *VeneerError {
	template, ok := registry[code]
	if !ok {
		return &VeneerError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VeneerError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new VeneerError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VeneerError {
	return &VeneerError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VeneerError.
func FromError(err error, code string) *VeneerError {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*VeneerError); ok {
		return ve
	}
	return New(code).Wrap(err)
}
