package errors

// ErrorCode is the machine-readable tag of one failure variant.
type ErrorCode string

// Resource and request errors
const (
	// ErrCodeNotFound indicates the referenced entity is absent.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeValidation indicates one or more field-level defects.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrCodeValidationField indicates a single-field defect (legacy shorthand).
	ErrCodeValidationField ErrorCode = "VALIDATION_FIELD"
	// ErrCodeBadRequest indicates a malformed request that is not tied to one field.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeConflict indicates a conflict with the current state of the resource.
	ErrCodeConflict ErrorCode = "CONFLICT"
)

// Authentication/Authorization errors
const (
	// ErrCodeUnauthorized indicates missing or invalid credentials.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates an authenticated caller without permission.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
)

// Infrastructure errors
const (
	// ErrCodeDatabaseError indicates a persistence-layer failure.
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	// ErrCodeConfigError indicates misconfiguration detected at use time.
	ErrCodeConfigError ErrorCode = "CONFIG_ERROR"
	// ErrCodeExternalService indicates a failing upstream dependency.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	// ErrCodeInternal indicates an unclassified internal fault.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeServiceUnavailable indicates overload or maintenance; callers may retry later.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// AllCodes lists every code in the taxonomy. The set is closed: consumers
// that branch on codes must cover every entry, and anything that maps codes
// to other values should be checked against this list in its tests.
var AllCodes = []ErrorCode{
	ErrCodeNotFound,
	ErrCodeValidation,
	ErrCodeValidationField,
	ErrCodeBadRequest,
	ErrCodeConflict,
	ErrCodeUnauthorized,
	ErrCodeForbidden,
	ErrCodeDatabaseError,
	ErrCodeConfigError,
	ErrCodeExternalService,
	ErrCodeInternal,
	ErrCodeServiceUnavailable,
}
