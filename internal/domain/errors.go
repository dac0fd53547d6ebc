package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.fieldNames() {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Messages returns the user-facing messages ordered by field name.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, field := range e.fieldNames() {
		msgs = append(msgs, e.Fields[field])
	}
	return msgs
}

func (e *ValidationError) fieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return names
}

// DuplicateTitleError reports a title already taken by a sibling entity.
// It wraps ErrConflict.
type DuplicateTitleError struct {
	Title   string
	Message string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("%s: duplicate title %q", ErrConflict.Error(), e.Title)
}

func (e *DuplicateTitleError) Unwrap() error {
	return ErrConflict
}

// Messages collects every user-facing message carried by err. It understands
// joined errors, so a single call surfaces all validation and duplicate-title
// failures produced by one operation. Returns nil if err carries none.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, Messages(e)...)
		}
		return msgs
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Messages()
	}
	var derr *DuplicateTitleError
	if errors.As(err, &derr) {
		return []string{derr.Message}
	}
	return nil
}

// IsUserError reports whether err is made up only of failures the user can
// correct by resubmitting a form (validation or duplicate title).
func IsUserError(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		if len(errs) == 0 {
			return false
		}
		for _, e := range errs {
			if !IsUserError(e) {
				return false
			}
		}
		return true
	}
	var derr *DuplicateTitleError
	return errors.Is(err, ErrValidation) || errors.As(err, &derr)
}
