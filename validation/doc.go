// Package validation builds multi-field validation failures.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation through a fluent builder that collects every
// defect instead of stopping at the first. Both paths fold into a single
// Validation failure carrying coded field errors in insertion order.
//
// # Struct Tag Validation
//
//	type CreateUserCmd struct {
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//	err := validation.Validate(cmd)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Required("name", cmd.Name).
//	    Field("email", "invalid_format", "must be a valid email").
//	    Build()
package validation
