package services

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to controllers:
//   ErrNotFound      -> 404, no state change
//   ErrForbidden     -> 403
//   *ValidationError -> 400 with the offending field/reason
// anything else      -> 500
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
