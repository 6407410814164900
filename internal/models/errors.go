package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate means a date field does not parse as YYYY-MM-DD.
	// The enclosing write does not occur.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrNotFound means the targeted record id is not owned by the caller.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports which required field failed to parse
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
