package errors

import (
	"fmt"
)

// ParseError represents a brief-file parsing failure with optional line metadata.
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

// ValidationError captures malformed or missing brief fields, such as an
// unrecognized enum value or an empty required set.
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

// FormatError reports a malformed color string reaching the color math
// utilities. The input is never silently replaced with a default color.
type FormatError struct {
	Input   string
	Message string
}

// NewFormatError constructs a FormatError for the given input string.
func NewFormatError(input, message string) error {
	return &FormatError{Input: input, Message: message}
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid format: %q: %s", e.Input, e.Message)
}

// RangeError reports a derived numeric value falling outside its documented
// bound. It indicates a bug in a rule table, not bad user input.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

// NewRangeError constructs a RangeError.
func NewRangeError(field string, value, min, max float64) error {
	return &RangeError{Field: field, Value: value, Min: min, Max: max}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("range error: %s: value %g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// UnsupportedComponentError indicates a component specification that no
// registered template can render.
type UnsupportedComponentError struct {
	Component string
	Kind      string
}

// NewUnsupportedComponentError constructs an UnsupportedComponentError.
func NewUnsupportedComponentError(component, kind string) error {
	return &UnsupportedComponentError{Component: component, Kind: kind}
}

func (e *UnsupportedComponentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("unsupported component %q: no %s template registered", e.Component, e.Kind)
	}
	return fmt.Sprintf("unsupported component %q", e.Component)
}

// RenderError represents a failure while executing a template.
type RenderError struct {
	Template string
	Err      error
}

// NewRenderError constructs a RenderError.
func NewRenderError(template string, err error) error {
	return &RenderError{Template: template, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("render error in template %q: %v", e.Template, e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExportError represents a failure writing generated artifacts to disk.
type ExportError struct {
	Path string
	Err  error
}

// NewExportError constructs an ExportError.
func NewExportError(path string, err error) error {
	return &ExportError{Path: path, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("export error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the root error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
