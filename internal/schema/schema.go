// Package schema implements the declarative header-field schemas used by
// every form: required-ness, pattern matching, enum membership, minimum
// length, and state-dependent field visibility.
package schema

import (
	"fmt"

	"github.com/tradeport/formengine/internal/catalog"
)

// Kind identifies how a header field is entered and validated.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
	KindEnum   Kind = "enum"
	KindBool   Kind = "bool"
)

// Condition gates a field's visibility on a sibling field's current value.
type Condition struct {
	Field  string `json:"field"`
	Equals string `json:"equals"`
}

// Field declares one header field and its validation rules.
type Field struct {
	Name        string     `json:"name"`
	Label       string     `json:"label"`
	Kind        Kind       `json:"kind"`
	Required    bool       `json:"required"`
	Pattern     string     `json:"pattern,omitempty"`    // named pattern, see patterns.go
	OptionSet   string     `json:"option_set,omitempty"` // catalog set for enum fields
	MinLen      int        `json:"min_len,omitempty"`
	VisibleWhen *Condition `json:"visible_when,omitempty"`
}

// Schema is an ordered set of header field declarations.
type Schema struct {
	Fields []Field `json:"fields"`
}

// FieldError reports one validation failure, addressable by field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldByName returns the declaration for name, or false if undeclared.
func (s Schema) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ActiveFields returns the fields currently relevant given the header
// values. A field with a VisibleWhen condition is active only while the
// named sibling holds the expected value. This is the single place that
// decides which fields are live; validation and payload assembly both use it.
func (s Schema) ActiveFields(values map[string]string) []Field {
	active := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.VisibleWhen != nil && values[f.VisibleWhen.Field] != f.VisibleWhen.Equals {
			continue
		}
		active = append(active, f)
	}
	return active
}

// Validate checks values against the schema and returns every violation.
// It never short-circuits: a payload with N invalid fields reports N errors.
// Only currently active fields are validated; hidden fields are ignored even
// if they hold stale values.
func (s Schema) Validate(values map[string]string) []FieldError {
	var errs []FieldError

	for _, f := range s.ActiveFields(values) {
		value := values[f.Name]

		if value == "" {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Message: f.Label + " is required"})
			}
			continue
		}

		if f.Pattern != "" {
			if err := MatchPattern(f.Pattern, value); err != nil {
				errs = append(errs, FieldError{Field: f.Name, Message: err.Error()})
				continue
			}
		}

		if f.Kind == KindEnum && f.OptionSet != "" {
			if !catalog.Contains(f.OptionSet, value) {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Message: fmt.Sprintf("%q is not an allowed value for %s", value, f.Label),
				})
				continue
			}
		}

		if f.MinLen > 0 && len(value) < f.MinLen {
			errs = append(errs, FieldError{
				Field:   f.Name,
				Message: fmt.Sprintf("%s must be at least %d characters", f.Label, f.MinLen),
			})
		}
	}

	// Reject values for fields the schema never declared; the closed field
	// set is what keeps header payloads from growing ad hoc keys.
	for name := range values {
		if _, ok := s.FieldByName(name); !ok {
			errs = append(errs, FieldError{Field: name, Message: "unknown field"})
		}
	}

	return errs
}
