package errors

import (
	"errors"
	"fmt"
)

// InvalidEnumValueError reports a client-supplied label that is not part of
// the closed transaction type or category vocabulary.
type InvalidEnumValueError struct {
	Field string
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

func NewInvalidEnumValueError(field, value string) error {
	return &InvalidEnumValueError{Field: field, Value: value}
}

func IsInvalidEnumValueError(err error) bool {
	var enumErr *InvalidEnumValueError
	return errors.As(err, &enumErr)
}

// MissingRequiredFilterError reports an aggregation requested without a
// filter it cannot safely run without.
type MissingRequiredFilterError struct {
	Field string
}

func (e *MissingRequiredFilterError) Error() string {
	return fmt.Sprintf("required filter %q is missing", e.Field)
}

func NewMissingRequiredFilterError(field string) error {
	return &MissingRequiredFilterError{Field: field}
}

func IsMissingRequiredFilterError(err error) bool {
	var missingErr *MissingRequiredFilterError
	return errors.As(err, &missingErr)
}

// RowMappingError reports stored data that could not be reconstructed into a
// typed transaction. The whole fetch fails; partial results are never returned.
type RowMappingError struct {
	Field    string
	RawValue string
	Err      error
}

func (e *RowMappingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not map row field %q (raw value %q): %v", e.Field, e.RawValue, e.Err)
	}
	return fmt.Sprintf("could not map row field %q (raw value %q)", e.Field, e.RawValue)
}

func (e *RowMappingError) Unwrap() error {
	return e.Err
}

func NewRowMappingError(field, rawValue string, err error) error {
	return &RowMappingError{Field: field, RawValue: rawValue, Err: err}
}

func IsRowMappingError(err error) bool {
	var mappingErr *RowMappingError
	return errors.As(err, &mappingErr)
}
