package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is the application failure type. The set of variants is closed:
// values are produced by the constructors in this package, carry their
// rendered message from the moment of construction, and are never mutated
// while propagating.
type AppError struct {
	code    ErrorCode
	message string
	fields  []FieldError
	cause   error
}

// Code returns the variant tag.
func (e *AppError) Code() ErrorCode { return e.code }

// Error returns the single-line human-readable message for the variant.
func (e *AppError) Error() string { return e.message }

// Unwrap returns the underlying cause, if the variant carries one.
func (e *AppError) Unwrap() error { return e.cause }

// Fields returns a copy of the field errors carried by the validation
// variants, nil for every other variant.
func (e *AppError) Fields() []FieldError {
	if len(e.fields) == 0 {
		return nil
	}
	out := make([]FieldError, len(e.fields))
	copy(out, e.fields)
	return out
}

// --- Variant Constructors ---

// NotFound reports that the referenced entity does not exist.
func NotFound(resource, id string) *AppError {
	return &AppError{
		code:    ErrCodeNotFound,
		message: fmt.Sprintf("Resource not found: %s with id: %s", resource, id),
	}
}

// Validation wraps a whole validation aggregate into one failure, preserving
// field order. The aggregate is copied; later changes to ve are not visible
// through the returned error.
func Validation(ve *ValidationErrors) *AppError {
	var fields []FieldError
	if ve != nil {
		fields = ve.FieldErrors()
	}
	message := "Validation failed"
	if len(fields) > 0 {
		parts := make([]string, len(fields))
		for i, fe := range fields {
			parts[i] = fe.Field + ": " + fe.Message
		}
		message = "Validation failed: " + strings.Join(parts, "; ")
	}
	return &AppError{code: ErrCodeValidation, message: message, fields: fields}
}

// ValidationField reports a single-field defect. It predates the aggregate
// form and is kept for callers that only ever have one field to report.
func ValidationField(field, message string) *AppError {
	return &AppError{
		code:    ErrCodeValidationField,
		message: fmt.Sprintf("Validation error: %s - %s", field, message),
		fields:  []FieldError{{Field: field, Code: "invalid", Message: message}},
	}
}

// InvalidField builds a one-entry Validation failure with an explicit
// machine-readable code.
func InvalidField(field, code, message string) *AppError {
	ve := NewValidationErrors()
	ve.Add(field, code, message)
	return Validation(ve)
}

// InvalidFieldValue is InvalidField with the offending value included.
func InvalidFieldValue(field, code, message string, received any) *AppError {
	ve := NewValidationErrors()
	ve.AddWithValue(field, code, message, received)
	return Validation(ve)
}

// Unauthorized reports missing or invalid credentials.
func Unauthorized() *AppError {
	return &AppError{code: ErrCodeUnauthorized, message: "Unauthorized"}
}

// Forbidden reports that the caller is authenticated but not allowed to
// perform the action.
func Forbidden(action string) *AppError {
	return &AppError{code: ErrCodeForbidden, message: fmt.Sprintf("Forbidden: %s", action)}
}

// Conflict reports a conflict with the current state of the resource, such
// as a uniqueness violation.
func Conflict(message string) *AppError {
	return &AppError{code: ErrCodeConflict, message: fmt.Sprintf("Conflict: %s", message)}
}

// DatabaseError reports a persistence-layer failure.
func DatabaseError(cause error) *AppError {
	return &AppError{
		code:    ErrCodeDatabaseError,
		message: fmt.Sprintf("Database error: %v", cause),
		cause:   cause,
	}
}

// ConfigError reports misconfiguration detected at use time.
func ConfigError(message string) *AppError {
	return &AppError{code: ErrCodeConfigError, message: fmt.Sprintf("Configuration error: %s", message)}
}

// ExternalServiceError reports a failing upstream dependency.
func ExternalServiceError(service string) *AppError {
	return &AppError{
		code:    ErrCodeExternalService,
		message: fmt.Sprintf("External service error: %s", service),
	}
}

// Internal reports an unclassified internal fault.
func Internal(message string) *AppError {
	return &AppError{code: ErrCodeInternal, message: fmt.Sprintf("Internal error: %s", message)}
}

// BadRequest reports a malformed or unsupported request that is not tied to
// a single field.
func BadRequest(message string) *AppError {
	return &AppError{code: ErrCodeBadRequest, message: fmt.Sprintf("Bad Request: %s", message)}
}

// ServiceUnavailable reports overload or maintenance; the caller may retry
// later.
func ServiceUnavailable(message string) *AppError {
	return &AppError{code: ErrCodeServiceUnavailable, message: fmt.Sprintf("Service unavailable: %s", message)}
}

// FormatResourceError builds a NotFound for an identifier of any type.
func FormatResourceError(resource string, id any) *AppError {
	return NotFound(resource, fmt.Sprintf("%v", id))
}

// --- Interop Helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the taxonomy code of err, or the empty code when err does
// not carry an AppError anywhere in its chain.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.code
	}
	return ""
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Wrap normalizes an arbitrary error into the taxonomy. A nil error stays
// nil and an AppError anywhere in the chain is returned unchanged; anything
// else becomes an Internal failure with a generic message and the original
// error attached as cause. The cause is available to logs through Unwrap but
// is never part of the rendered message.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	appErr := Internal("unexpected error")
	appErr.cause = err
	return appErr
}
