package intl

import (
	"errors"
	"fmt"
)

// ErrMissingParameter indicates a helper was invoked without a required parameter.
var ErrMissingParameter = errors.New("intl: missing parameter")

// ErrInvalidDate indicates a value could not be coerced into a valid date.
var ErrInvalidDate = errors.New("intl: invalid date")

// ErrUnknownMessage indicates a _key lookup found no message in the context
// chain or the plugin catalog.
var ErrUnknownMessage = errors.New("intl: unknown message")

// MissingParameterError names the required parameter that was absent.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("intl: missing parameter %q", e.Name)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}

// InvalidDateError carries the value that failed date coercion.
type InvalidDateError struct {
	Value any
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("intl: invalid date value %v (%T)", e.Value, e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}
