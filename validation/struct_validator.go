package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/errkit/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return toSnakeCase(fld.Name)
			}
			return name
		})
	})
	return validate
}

// Validate checks a struct against its validate tags, for example
// `validate:"required,email,max=255"`, and folds every defect into one
// Validation failure with coded field errors in declaration order.
func Validate(s any) error {
	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Internal("validation target must be a struct")
	}

	ve := errors.NewValidationErrors()
	for _, e := range fieldErrs {
		ve.Add(e.Field(), tagCode(e), formatValidationError(e))
	}
	return ve.Err()
}

// tagCode maps a validator tag onto the field-error code vocabulary shared
// with Builder.
func tagCode(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "required"
	case "email", "url", "uri":
		return "invalid_format"
	case "uuid", "uuid4":
		return "invalid_uuid"
	case "min":
		if e.Kind() == reflect.String {
			return "too_short"
		}
		return "too_small"
	case "max":
		if e.Kind() == reflect.String {
			return "too_long"
		}
		return "too_large"
	case "oneof":
		return "not_one_of"
	default:
		return "invalid"
	}
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "url", "uri":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32) // lowercase
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
