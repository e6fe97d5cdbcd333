package urlparams

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes encode errors.
type ErrorCode string

const (
	// ErrCodeTopLevelShape indicates the input is not record-shaped.
	ErrCodeTopLevelShape ErrorCode = "UNSUPPORTED_TOP_LEVEL_SHAPE"

	// ErrCodeNestedRecord indicates a field's value is itself a record.
	// Flattening semantics are ambiguous, so the shape is rejected rather
	// than guessed.
	ErrCodeNestedRecord ErrorCode = "UNSUPPORTED_NESTED_RECORD"

	// ErrCodeVariantWithData indicates an enum case carries payload data
	// the flat key=value format cannot render.
	ErrCodeVariantWithData ErrorCode = "UNSUPPORTED_VARIANT_WITH_DATA"

	// ErrCodeUnrepresentable indicates a leaf value has no text form,
	// e.g. a non-finite float or a failing text marshaler.
	ErrCodeUnrepresentable ErrorCode = "UNREPRESENTABLE_SCALAR"
)

// Error represents a failure detected during traversal. Encoding aborts at
// the first failure; no partial output accompanies an Error.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Path identifies the offending field, e.g. "filter[1]".
	// Empty for top-level shape errors.
	Path string

	// Cause is the underlying error for representation failures, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (at %s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsUnsupportedShape reports whether err is a structural error: wrong
// top-level shape, nested record, or variant with payload.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedShape(err error) bool {
	var ee *Error
	if errors.As(err, &ee) {
		switch ee.Code {
		case ErrCodeTopLevelShape, ErrCodeNestedRecord, ErrCodeVariantWithData:
			return true
		}
	}
	return false
}

// IsUnrepresentable reports whether err is a representation error: a scalar
// that has no text form. Uses errors.As to handle wrapped errors.
func IsUnrepresentable(err error) bool {
	var ee *Error
	return errors.As(err, &ee) && ee.Code == ErrCodeUnrepresentable
}

// newTopLevelError creates an Error for a non-record top-level value.
func newTopLevelError(v Value) *Error {
	return &Error{
		Code:    ErrCodeTopLevelShape,
		Message: fmt.Sprintf("top-level value must be a record, got %s", kindName(v)),
	}
}

// newNestedRecordError creates an Error for a record found as a field value.
func newNestedRecordError(path string) *Error {
	return &Error{
		Code:    ErrCodeNestedRecord,
		Message: "nested record has no defined flattening",
		Path:    path,
	}
}

// newVariantDataError creates an Error for a variant carrying payload data.
func newVariantDataError(path, name string) *Error {
	return &Error{
		Code:    ErrCodeVariantWithData,
		Message: fmt.Sprintf("variant %q carries data that cannot be rendered", name),
		Path:    path,
	}
}

// newUnrepresentableError creates an Error for a scalar without a text form.
func newUnrepresentableError(path string, cause error) *Error {
	return &Error{
		Code:    ErrCodeUnrepresentable,
		Message: cause.Error(),
		Path:    path,
		Cause:   cause,
	}
}
