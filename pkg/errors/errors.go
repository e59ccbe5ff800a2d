package errors

import (
	stdErrors "errors"
	"fmt"
)

// Sentinel causes wrapped by BindingError. Match them with errors.Is.
var (
	ErrUnsupportedObject = stdErrors.New("object must be a non-nil pointer to a struct or a string-keyed map")
	ErrPropertyNotFound  = stdErrors.New("property not found")
	ErrNilValue          = stdErrors.New("property value is nil")
	ErrTypeMismatch      = stdErrors.New("value cannot be converted to the property type")
	ErrUnsupportedType   = stdErrors.New("no controller for property type")
	ErrNotCallable       = stdErrors.New("property is not a function without arguments")
)

// ParseError represents a snapshot or config decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures option and configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BindingError reports a property that cannot be bound, read or written.
type BindingError struct {
	Property string
	Err      error
}

// NewBindingError constructs a BindingError for the given property.
func NewBindingError(property string, err error) error {
	return &BindingError{Property: property, Err: err}
}

func (e *BindingError) Error() string {
	if e == nil {
		return ""
	}
	if e.Property != "" {
		return fmt.Sprintf("binding error on %q: %v", e.Property, e.Err)
	}
	return fmt.Sprintf("binding error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *BindingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PersistenceError indicates a panel tree that cannot be saved, such as
// sibling controllers sharing a name.
type PersistenceError struct {
	Key     string
	Message string
}

// NewPersistenceError constructs a PersistenceError for the given key.
func NewPersistenceError(key, message string) error {
	return &PersistenceError{Key: key, Message: message}
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("persistence error [%s]: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("persistence error: %s", e.Message)
}
