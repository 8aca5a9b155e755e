package apperrors

import (
	"fmt"
	"strings"
)

// FieldError is a single failed check on a form field. Key is a message key
// the client can translate (e.g. "item.form.error.duplicated").
type FieldError struct {
	Field string `json:"field"`
	Key   string `json:"key"`
}

// FieldErrors accumulates field-level validation failures for one form.
// The zero value is ready to use.
type FieldErrors struct {
	errs []FieldError
}

// State records key against field when ok is false and reports ok back.
func (f *FieldErrors) State(ok bool, field, key string) bool {
	if !ok {
		f.errs = append(f.errs, FieldError{Field: field, Key: key})
	}
	return ok
}

// Add records an unconditional failure.
func (f *FieldErrors) Add(field, key string) {
	f.errs = append(f.errs, FieldError{Field: field, Key: key})
}

// HasErrors reports whether field already failed a check.
func (f *FieldErrors) HasErrors(field string) bool {
	for _, e := range f.errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Empty reports whether no check has failed.
func (f *FieldErrors) Empty() bool {
	return len(f.errs) == 0
}

// Fields returns the recorded failures in insertion order.
func (f *FieldErrors) Fields() []FieldError {
	out := make([]FieldError, len(f.errs))
	copy(out, f.errs)
	return out
}

// Err returns nil when nothing failed, otherwise f itself as an error.
func (f *FieldErrors) Err() error {
	if f.Empty() {
		return nil
	}
	return f
}

func (f *FieldErrors) Error() string {
	parts := make([]string, 0, len(f.errs))
	for _, e := range f.errs {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Key))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(fieldErrs, ErrValidation) hold.
func (f *FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
