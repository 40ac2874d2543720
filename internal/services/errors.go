package services

import (
	"errors"
	"fmt"
)

var ErrBookNotFound = errors.New("book not found")

// ValidationError reports a client supplied book that breaks a catalog rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
