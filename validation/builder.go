package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/errkit/errors"
)

// Builder accumulates field errors across independent checks without
// short-circuiting, so validating a multi-field input reports every defect
// in one response instead of only the first.
type Builder struct {
	errors *errors.ValidationErrors
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{errors: errors.NewValidationErrors()}
}

// Field appends one field error and returns the builder for chaining.
func (b *Builder) Field(field, code, message string) *Builder {
	b.errors.Add(field, code, message)
	return b
}

// FieldWithValue appends one field error including the received value.
func (b *Builder) FieldWithValue(field, code, message string, received any) *Builder {
	b.errors.AddWithValue(field, code, message, received)
	return b
}

// HasErrors reports whether any check has failed so far.
func (b *Builder) HasErrors() bool {
	return !b.errors.IsEmpty()
}

// Errors returns a copy of the accumulated field errors in insertion order.
func (b *Builder) Errors() []errors.FieldError {
	return b.errors.FieldErrors()
}

// Build returns nil when every check passed, otherwise a single Validation
// failure carrying all accumulated field errors in insertion order.
func (b *Builder) Build() error {
	return b.errors.Err()
}

// Required checks that a string is non-empty.
func (b *Builder) Required(field, value string) *Builder {
	if strings.TrimSpace(value) == "" {
		b.Field(field, "required", "is required")
	}
	return b
}

// RequiredUUID checks that a string is a valid non-nil UUID.
func (b *Builder) RequiredUUID(field, value string) *Builder {
	if strings.TrimSpace(value) == "" {
		return b.Field(field, "required", "is required")
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return b.Field(field, "invalid_uuid", "must be a valid UUID")
	}
	if parsed == uuid.Nil {
		b.Field(field, "invalid_uuid", "must not be the zero UUID")
	}
	return b
}

// OptionalUUID checks that a non-empty string is a valid UUID.
func (b *Builder) OptionalUUID(field, value string) *Builder {
	if value == "" {
		return b
	}
	if _, err := uuid.Parse(value); err != nil {
		b.Field(field, "invalid_uuid", "must be a valid UUID")
	}
	return b
}

// MaxLength checks that a string does not exceed maxLen.
func (b *Builder) MaxLength(field, value string, maxLen int) *Builder {
	if len(value) > maxLen {
		b.Field(field, "too_long", fmt.Sprintf("must be %d characters or less", maxLen))
	}
	return b
}

// MinLength checks that a string has at least minLen characters.
func (b *Builder) MinLength(field, value string, minLen int) *Builder {
	if len(value) < minLen {
		b.Field(field, "too_short", fmt.Sprintf("must be at least %d characters", minLen))
	}
	return b
}

// Range checks that a number falls within [minVal, maxVal]. The received
// value is included in the field error.
func (b *Builder) Range(field string, value, minVal, maxVal int) *Builder {
	if value < minVal || value > maxVal {
		b.FieldWithValue(field, "out_of_range", fmt.Sprintf("must be between %d and %d", minVal, maxVal), value)
	}
	return b
}

// Min checks that a number meets a minimum value.
func (b *Builder) Min(field string, value, minVal int) *Builder {
	if value < minVal {
		b.FieldWithValue(field, "too_small", fmt.Sprintf("must be at least %d", minVal), value)
	}
	return b
}

// Max checks that a number does not exceed a maximum value.
func (b *Builder) Max(field string, value, maxVal int) *Builder {
	if value > maxVal {
		b.FieldWithValue(field, "too_large", fmt.Sprintf("must be %d or less", maxVal), value)
	}
	return b
}

// Pattern checks that a non-empty string matches a regex pattern.
func (b *Builder) Pattern(field, value, pattern string) *Builder {
	if value == "" {
		return b
	}
	matched, err := regexp.MatchString(pattern, value)
	if err != nil || !matched {
		b.Field(field, "invalid_format", "does not match required format")
	}
	return b
}

// OneOf checks that a non-empty value is one of the allowed values.
func (b *Builder) OneOf(field, value string, allowed []string) *Builder {
	if value == "" {
		return b
	}
	for _, a := range allowed {
		if value == a {
			return b
		}
	}
	b.Field(field, "not_one_of", fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return b
}

// Custom records a field error when condition is false.
func (b *Builder) Custom(condition bool, field, message string) *Builder {
	if !condition {
		b.Field(field, "invalid", message)
	}
	return b
}

// Required validates a single required field and returns a failure if empty.
func Required(field, value string) error {
	return New().Required(field, value).Build()
}

// ValidateUUID validates and parses a UUID string.
func ValidateUUID(field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, errors.InvalidField(field, "required", "is required")
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.InvalidField(field, "invalid_uuid", "must be a valid UUID")
	}
	return id, nil
}
