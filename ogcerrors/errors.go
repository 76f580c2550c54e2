// Package ogcerrors provides structured error types for ogcapi-registry.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// Anything wrong with a document being validated is reported as a finding in
// a validation result, never as an error. The types in this package cover the
// remaining failure modes: fetching remote content, parsing content outside a
// validation pass, and misuse of the specification registries.
package ogcerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrFetch indicates a remote document could not be fetched.
	ErrFetch = errors.New("fetch error")

	// ErrParse indicates content could not be parsed as a JSON/YAML object.
	ErrParse = errors.New("parse error")

	// ErrNotFound indicates a requested reference specification was never
	// registered.
	ErrNotFound = errors.New("specification not found")

	// ErrAlreadyExists indicates a specification was registered twice without
	// an explicit overwrite.
	ErrAlreadyExists = errors.New("specification already exists")

	// ErrConfig indicates an invalid configuration or input.
	ErrConfig = errors.New("configuration error")
)

// FetchError represents a failure to fetch a remote document.
type FetchError struct {
	// URL is the URL that failed to fetch
	URL string
	// StatusCode is the HTTP status code (0 if the request never completed)
	StatusCode int
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	msg := "fetch error"
	if e.URL != "" {
		msg += " for " + e.URL
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// ParseError represents a failure to parse document content.
// This includes JSON/YAML deserialization errors and non-object content.
type ParseError struct {
	// Source is the file path, URL, or source identifier
	Source string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NotFoundError indicates a requested reference specification is not
// registered. This reflects caller configuration error, not document
// non-compliance, and is therefore returned rather than recorded as a
// finding.
type NotFoundError struct {
	// SpecType identifies the specification type that was requested
	SpecType string
	// Version is the requested version ("any" when the latest was requested)
	Version string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("specification not found: %s version %s", e.SpecType, e.Version)
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError indicates an attempt to register a specification under a
// key that is already registered, without requesting an overwrite.
type AlreadyExistsError struct {
	// SpecType identifies the specification type
	SpecType string
	// Version is the version that collided
	Version string
}

// Error returns a human-readable error message.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("specification already exists: %s version %s (use overwrite to replace)", e.SpecType, e.Version)
}

// Is reports whether target matches this error type.
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
