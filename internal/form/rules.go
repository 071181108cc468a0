// Package form holds the storefront's form models and their synchronous
// field validation. Each form validates every field, keeps the first
// failing rule's message per field, and must validate cleanly before it is
// submitted.
package form

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Values maps field names to their current input.
type Values map[string]string

// Rule checks one field. It returns a user-facing message, or "" when the
// value passes. all gives access to sibling fields.
type Rule func(value string, all Values) string

// Field pairs a field name with its rules, checked in order.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is the ordered rule set of a form.
type Schema []Field

// Validate checks every field and returns nil when all pass.
func (s Schema) Validate(values Values) *FieldErrors {
	var errs FieldErrors
	for _, f := range s {
		if msg := s.check(f, values); msg != "" {
			errs.Errors = append(errs.Errors, FieldError{Field: f.Name, Message: msg})
		}
	}
	if len(errs.Errors) == 0 {
		return nil
	}
	return &errs
}

// ValidateField checks a single field against its rules. Unknown fields
// pass.
func (s Schema) ValidateField(name string, values Values) error {
	for _, f := range s {
		if f.Name != name {
			continue
		}
		if msg := s.check(f, values); msg != "" {
			return &FieldError{Field: name, Message: msg}
		}
		return nil
	}
	return nil
}

func (s Schema) check(f Field, values Values) string {
	v := values[f.Name]
	for _, rule := range f.Rules {
		if msg := rule(v, values); msg != "" {
			return msg
		}
	}
	return ""
}

// emailPattern accepts local@domain.tld with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@.]+$`)

// Required rejects blank values.
func Required(msg string) Rule {
	return func(v string, _ Values) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	}
}

// Email rejects values that are not shaped like an email address. Blank
// values pass so Required owns that message.
func Email(msg string) Rule {
	return func(v string, _ Values) string {
		if v == "" || emailPattern.MatchString(v) {
			return ""
		}
		return msg
	}
}

// MinLength rejects values shorter than n characters.
func MinLength(n int, msg string) Rule {
	return func(v string, _ Values) string {
		if v == "" || utf8.RuneCountInString(v) >= n {
			return ""
		}
		return msg
	}
}

// Matches rejects values that differ from the named sibling field.
func Matches(other, msg string) Rule {
	return func(v string, all Values) string {
		if v == all[other] {
			return ""
		}
		return msg
	}
}

// OneOf rejects values outside options.
func OneOf(options []string, msg string) Rule {
	return func(v string, _ Values) string {
		if v == "" || slices.Contains(options, v) {
			return ""
		}
		return msg
	}
}

// Layout rejects values that do not parse with the given time layout.
func Layout(layout, msg string) Rule {
	return func(v string, _ Values) string {
		if v == "" {
			return ""
		}
		if _, err := time.Parse(layout, v); err != nil {
			return msg
		}
		return ""
	}
}

// FieldError is a validation failure on one field.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface with the user-facing message.
func (e *FieldError) Error() string {
	return e.Message
}

// FieldErrors is the ordered set of failures for a form.
type FieldErrors struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *FieldErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(parts, "; "))
}

// Get returns the message for field, or "".
func (e *FieldErrors) Get(field string) string {
	if e == nil {
		return ""
	}
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Has reports whether field failed.
func (e *FieldErrors) Has(field string) bool {
	return e.Get(field) != ""
}
