package domain

import (
	"errors"
	"fmt"
)

// UnknownTableError is returned for a table token outside the registry.
type UnknownTableError struct {
	Name string
}

func (e UnknownTableError) Error() string {
	if e.Name == "" {
		return "table not found"
	}
	return fmt.Sprintf("table %q not found", e.Name)
}

type NotFoundError struct {
	Resource string
	ID       int64
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID > 0:
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

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

// ConstraintError reports a referential-integrity violation raised by the store.
type ConstraintError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConstraintError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s constraint: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s constraint violated", e.Resource)
	default:
		return "constraint violated"
	}
}

func (e ConstraintError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "internal error"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e InternalError) Unwrap() error { return e.Err }

func IsUnknownTable(err error) bool {
	var target UnknownTableError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConstraint(err error) bool {
	var target ConstraintError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
