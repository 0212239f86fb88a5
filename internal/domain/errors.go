package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ValidationError reports input that can never succeed as submitted.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// FieldError builds a ValidationError from a field -> failed-tag map, picking
// the alphabetically first field so the message is stable.
func FieldError(fields map[string]string) error {
	if len(fields) == 0 {
		return ValidationError{Msg: "invalid request"}
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return ValidationError{Field: names[0], Msg: fmt.Sprintf("failed %q check", fields[names[0]])}
}

// ConflictError reports a request that clashes with stored state; the caller
// has to change the request (e.g. pick another seat) before retrying.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

// Message returns the user-facing text of a taxonomy error, or fallback.
func Message(err error, fallback string) string {
	var v ValidationError
	if errors.As(err, &v) {
		return v.Error()
	}
	var c ConflictError
	if errors.As(err, &c) {
		return c.Error()
	}
	var n NotFoundError
	if errors.As(err, &n) {
		return n.Error()
	}
	return fallback
}
