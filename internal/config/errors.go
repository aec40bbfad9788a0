// Package config defines the project topology model for stackgen and the
// validation rules that keep a topology internally consistent: unique
// service names, unique ports, reserved values, and credential constraints.
// Validators are incremental: each candidate is checked against an
// accumulator of previously accepted values so the interactive collector
// can give immediate feedback, one question at a time.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration validation.
var (
	// ErrEmptyName indicates a required name was empty.
	ErrEmptyName = errors.New("config: name must not be empty")

	// ErrInvalidProjectName indicates the project name is not a valid
	// npm-style package identifier.
	ErrInvalidProjectName = errors.New("config: invalid project name")

	// ErrNotKebabCase indicates a name is not kebab-case.
	ErrNotKebabCase = errors.New("config: name must be kebab-case (lowercase letters, digits, hyphens)")

	// ErrReservedName indicates a service name collides with a reserved name.
	ErrReservedName = errors.New("config: name is reserved")

	// ErrDuplicateName indicates a service name is already taken.
	ErrDuplicateName = errors.New("config: name already in use")

	// ErrPortOutOfRange indicates a port outside the allowed [1024, 65535] range.
	ErrPortOutOfRange = errors.New("config: port must be between 1024 and 65535")

	// ErrPortReserved indicates the port equals the reserved database port.
	ErrPortReserved = errors.New("config: port 5432 is reserved for the database")

	// ErrPortInUse indicates a port is already assigned to another service.
	ErrPortInUse = errors.New("config: port already in use")

	// ErrPasswordTooShort indicates a database password below the minimum length.
	ErrPasswordTooShort = errors.New("config: password must be at least 8 characters")

	// ErrInvalidFramework indicates an unrecognized frontend framework value.
	ErrInvalidFramework = errors.New("config: framework must be one of: nuxt, vue")

	// ErrInvalidStyling indicates an unrecognized styling value.
	ErrInvalidStyling = errors.New("config: styling must be one of: css, sass")

	// ErrInvalidAdminTool indicates an unrecognized database admin tool value.
	ErrInvalidAdminTool = errors.New("config: admin tool must be one of: none, pgadmin, adminer")

	// ErrFrontendCount indicates the number of frontends is outside 1..5.
	ErrFrontendCount = errors.New("config: project must have between 1 and 5 frontends")
)

// ValidationError carries field context for a single validation failure.
// Validation failures are expected control flow: the interactive collector
// surfaces the message and re-prompts, so they are never logged as bugs.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors produced by a
// whole-config Validate pass.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
