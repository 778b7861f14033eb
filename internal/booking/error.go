package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidInput = errors.New("invalid booking input")

// ValidationError collects every problem found in an Input, keyed by field.
type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{
		fields: make(map[string][]string),
	}
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationError *ValidationError

	if errors.As(err, &validationError) {
		return validationError
	}

	return nil
}

func (ve *ValidationError) fieldsCount() int {
	return len(ve.fields)
}

func (ve *ValidationError) addError(field, msg string) {
	ve.fields[field] = append(ve.fields[field], msg)
}

func (ve *ValidationError) Error() string {
	keys := make([]string, 0, len(ve.fields))
	for k := range ve.fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(ve.fields[k], "; ")))
	}

	return fmt.Sprintf("%v: %s", ErrInvalidInput, strings.Join(parts, ", "))
}

func (ve *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func (ve *ValidationError) Fields() map[string][]string {
	return ve.fields
}

func (ve *ValidationError) Has(field string) bool {
	_, ok := ve.fields[field]

	return ok
}
