// Package config loads the storefront configuration from YAML section
// files, applies defaults and environment overrides, and validates the
// result.
package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig matches any rejected storefront setting.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNotInitialized is returned by Save before Load has run.
	ErrNotInitialized = errors.New("config: Save called before Load")

	// ErrInvalidYAML marks a section file that does not parse.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidURL indicates api.base_url is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("config: invalid base URL")

	// ErrOutOfRange indicates a numeric value outside its accepted range.
	ErrOutOfRange = errors.New("config: value out of range")
)

// ValidationError is one rejected setting. Field is the dotted YAML path
// of the setting, such as carousel.breakpoint_lg or api.base_url.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("config: %s %s (got %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("config: %s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidationErrors lists every rejected setting across the api, carousel,
// ui and system sections, so one run of Validate reports them all.
type ValidationErrors struct {
	Errors []ValidationError
}

func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "config: no invalid settings"
	case 1:
		return e.Errors[0].Error()
	}
	fields := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		fields[i] = fmt.Sprintf("%s %s", ve.Field, ve.Message)
	}
	return fmt.Sprintf("config: %d invalid settings: %s", len(e.Errors), strings.Join(fields, "; "))
}

// Is matches ErrInvalidConfig for any list, and otherwise the sentinel
// behind any one rejected setting.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Err != nil && errors.Is(ve.Err, target) {
			return true
		}
	}
	return false
}
